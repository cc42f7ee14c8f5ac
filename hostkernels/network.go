// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hostkernels

import (
	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

func init() {
	kernel.Register(computation.OpSend, placement.KindHost, []value.Kind{value.KindHostRing64}, unaryKernel(sendRing64Kernel))
	kernel.Register(computation.OpReceive, placement.KindHost, nil, nullaryKernel(receiveKernel))
}

// sendRing64Kernel and receiveKernel are the runtime-session instances of
// send/receive: the symbolic session rejects these operators outright
// (they have no compile-time meaning), but at runtime they move a value
// across the Networking strategy keyed by the op's attributes.
func sendRing64Kernel(ctx *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	if ctx.Net == nil {
		return nil, moerrors.Kernel("send: no networking configured")
	}
	peer := ids.Identity(op.Attrs.Query)
	rendezvous := []byte(op.Attrs.Key)
	if err := ctx.Net.Send(ctx.Ctx, a, peer, rendezvous); err != nil {
		return nil, moerrors.Kernel("send: %v", err)
	}
	return value.Unit{Plc: op.Placement}, nil
}

func receiveKernel(ctx *kernel.Context, op computation.Operation) (value.Value, error) {
	if ctx.Net == nil {
		return nil, moerrors.Kernel("receive: no networking configured")
	}
	peer := ids.Identity(op.Attrs.Query)
	rendezvous := []byte(op.Attrs.Key)
	v, err := ctx.Net.Receive(ctx.Ctx, peer, rendezvous)
	if err != nil {
		return nil, moerrors.Kernel("receive: %v", err)
	}
	return value.WithPlacement(v, op.Placement), nil
}
