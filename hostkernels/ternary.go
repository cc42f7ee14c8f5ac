// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hostkernels

import (
	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

func init() {
	kernel.Register(computation.OpMux, placement.KindHost,
		[]value.Kind{value.KindHostRing64, value.KindHostRing64, value.KindHostRing64},
		kernel.Kernel{Arity: computation.ArityTernary, Ternary: muxRing64Kernel})
}

// muxRing64Kernel selects, element by element, between b and c based on
// whether a's element is zero or non-zero — the Host-placement analogue
// of the Mux a replicated protocol would compute without revealing a.
func muxRing64Kernel(_ *kernel.Context, op computation.Operation, a, b, c value.Value) (value.Value, error) {
	sel, ok := a.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("mux: selector must be a ring64 tensor, got %T", a)
	}
	x, ok := b.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("mux: unsupported true-branch operand %T", b)
	}
	y, ok := c.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("mux: unsupported false-branch operand %T", c)
	}
	if len(sel.Data) != len(x.Data) || len(x.Data) != len(y.Data) {
		return nil, moerrors.Kernel("mux: shape mismatch")
	}
	out := make([]uint64, len(sel.Data))
	for i := range out {
		if sel.Data[i] != 0 {
			out[i] = x.Data[i]
		} else {
			out[i] = y.Data[i]
		}
	}
	return value.HostRing64Tensor{Plc: op.Placement, Shape: x.Shape, Data: out}, nil
}
