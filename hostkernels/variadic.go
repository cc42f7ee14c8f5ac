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
	kernel.Register(computation.OpAddN, placement.KindHost, nil,
		kernel.Kernel{Arity: computation.ArityVariadic, Variadic: addNRing64Kernel})
	kernel.Register(computation.OpConcat, placement.KindHost, nil,
		kernel.Kernel{Arity: computation.ArityVariadic, Variadic: concatRing64Kernel})

	// maximum @ Mirrored3 is intentionally left unregistered: comparing
	// mirrored values element-wise across three independently-replicated
	// copies without a reveal is not given a semantics by the source
	// material (Open Question); Host-placement maximum below is the only
	// instance provided.
	kernel.Register(computation.OpMaximum, placement.KindHost, nil,
		kernel.Kernel{Arity: computation.ArityVariadic, Variadic: maximumRing64Kernel})
}

func addNRing64Kernel(_ *kernel.Context, op computation.Operation, operands []value.Value) (value.Value, error) {
	if len(operands) == 0 {
		return nil, moerrors.InvalidArgument("add_n: requires at least one operand")
	}
	first, ok := operands[0].(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("add_n: unsupported operand %T", operands[0])
	}
	out := make([]uint64, len(first.Data))
	copy(out, first.Data)
	for _, operand := range operands[1:] {
		rt, ok := operand.(value.HostRing64Tensor)
		if !ok {
			return nil, moerrors.Kernel("add_n: unsupported operand %T", operand)
		}
		if len(rt.Data) != len(out) {
			return nil, moerrors.Kernel("add_n: shape mismatch")
		}
		for i := range out {
			out[i] += rt.Data[i]
		}
	}
	return value.HostRing64Tensor{Plc: op.Placement, Shape: first.Shape, Data: out}, nil
}

func concatRing64Kernel(_ *kernel.Context, op computation.Operation, operands []value.Value) (value.Value, error) {
	var out []uint64
	for _, operand := range operands {
		rt, ok := operand.(value.HostRing64Tensor)
		if !ok {
			return nil, moerrors.Kernel("concat: unsupported operand %T", operand)
		}
		out = append(out, rt.Data...)
	}
	return value.HostRing64Tensor{Plc: op.Placement, Shape: []int64{int64(len(out))}, Data: out}, nil
}

func maximumRing64Kernel(_ *kernel.Context, op computation.Operation, operands []value.Value) (value.Value, error) {
	if len(operands) == 0 {
		return nil, moerrors.InvalidArgument("maximum: requires at least one operand")
	}
	first, ok := operands[0].(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("maximum: unsupported operand %T", operands[0])
	}
	out := make([]uint64, len(first.Data))
	copy(out, first.Data)
	for _, operand := range operands[1:] {
		rt, ok := operand.(value.HostRing64Tensor)
		if !ok {
			return nil, moerrors.Kernel("maximum: unsupported operand %T", operand)
		}
		if len(rt.Data) != len(out) {
			return nil, moerrors.Kernel("maximum: shape mismatch")
		}
		for i := range out {
			if int64(rt.Data[i]) > int64(out[i]) {
				out[i] = rt.Data[i]
			}
		}
	}
	return value.HostRing64Tensor{Plc: op.Placement, Shape: first.Shape, Data: out}, nil
}
