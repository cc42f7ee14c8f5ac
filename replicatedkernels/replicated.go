// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package replicatedkernels implements the §4.4 kernels that operate on
// 2-out-of-3 replicated ring shares and the Host/Mirrored3 conversions
// that produce and consume them (placement.ConversionFor governs which
// of these a given source/destination pair requires).
//
// Only additive replicated secret sharing over a 64-bit ring is modeled;
// rep_to_adt/adt_to_rep are not registered because no distinct additive
// (2-party, non-replicated) container type is defined in this tree's
// value vocabulary — see the design notes for the justification.
package replicatedkernels

import (
	"crypto/rand"

	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

func init() {
	kernel.Register(computation.OpShare, placement.KindReplicated, []value.Kind{value.KindHostRing64}, unaryKernel(shareKernel))
	kernel.Register(computation.OpReveal, placement.KindHost, []value.Kind{value.KindReplicatedRing64}, unaryKernel(revealKernel))
	kernel.Register(computation.OpMirror, placement.KindMirrored3, []value.Kind{value.KindHostRing64}, unaryKernel(mirrorKernel))
	kernel.Register(computation.OpDemirror, placement.KindHost, []value.Kind{value.KindMirroredRing64}, unaryKernel(demirrorKernel))

	kernel.Register(computation.OpAdd, placement.KindReplicated,
		[]value.Kind{value.KindReplicatedRing64, value.KindReplicatedRing64}, binaryKernel(addReplicatedKernel))
	kernel.Register(computation.OpMul, placement.KindReplicated,
		[]value.Kind{value.KindReplicatedRing64, value.KindReplicatedRing64}, binaryKernel(mulReplicatedKernel))
}

func unaryKernel(fn func(ctx *kernel.Context, op computation.Operation, a value.Value) (value.Value, error)) kernel.Kernel {
	return kernel.Kernel{Arity: computation.ArityUnary, Unary: fn}
}

func binaryKernel(fn func(ctx *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error)) kernel.Kernel {
	return kernel.Kernel{Arity: computation.ArityBinary, Binary: fn}
}

func randomRing64(n int) ([]uint64, error) {
	out := make([]uint64, n)
	buf := make([]byte, 8*n)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	for i := range out {
		var v uint64
		for b := 0; b < 8; b++ {
			v |= uint64(buf[i*8+b]) << (8 * b)
		}
		out[i] = v
	}
	return out, nil
}

// shareKernel produces a 2-out-of-3 replicated additive sharing of a
// Host ring64 tensor: three parties P0,P1,P2 each hold two of three
// additive shares x0,x1,x2 with x0+x1+x2 == x, laid out as a
// shares[party][slot] replicated container.
func shareKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("share: unsupported operand %T", a)
	}
	n := len(rt.Data)
	x0, err := randomRing64(n)
	if err != nil {
		return nil, moerrors.Kernel("share: %v", err)
	}
	x1, err := randomRing64(n)
	if err != nil {
		return nil, moerrors.Kernel("share: %v", err)
	}
	x2 := make([]uint64, n)
	for i := range x2 {
		x2[i] = rt.Data[i] - x0[i] - x1[i]
	}
	return value.ReplicatedRing64Tensor{
		Plc:   op.Placement,
		Shape: rt.Shape,
		Shares: [3][2][]uint64{
			{x0, x1},
			{x1, x2},
			{x2, x0},
		},
	}, nil
}

// revealKernel reconstructs x = x0+x1+x2 from party 0's two shares
// (x0, x1) and party 1's second share (x2), matching shareKernel's layout.
func revealKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rep, ok := a.(value.ReplicatedRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("reveal: unsupported operand %T", a)
	}
	x0, x1 := rep.Shares[0][0], rep.Shares[0][1]
	x2 := rep.Shares[1][1]
	out := make([]uint64, len(x0))
	for i := range out {
		out[i] = x0[i] + x1[i] + x2[i]
	}
	return value.HostRing64Tensor{Plc: op.Placement, Shape: rep.Shape, Data: out}, nil
}

// mirrorKernel broadcasts a Host value to all three placements of a
// Mirrored3 group without secret-sharing it (§4.1: Mirrored3 holds a
// plaintext copy per party, unlike Replicated's additive shares).
func mirrorKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("mirror: unsupported operand %T", a)
	}
	return value.MirroredRing64Tensor{Plc: op.Placement, Shape: rt.Shape, Data: rt.Data}, nil
}

func demirrorKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	m, ok := a.(value.MirroredRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("demirror: unsupported operand %T", a)
	}
	return value.HostRing64Tensor{Plc: op.Placement, Shape: m.Shape, Data: m.Data}, nil
}

func addReplicatedKernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, ok := a.(value.ReplicatedRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("add: unsupported left operand %T", a)
	}
	y, ok := b.(value.ReplicatedRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("add: unsupported right operand %T", b)
	}
	var shares [3][2][]uint64
	for party := 0; party < 3; party++ {
		for slot := 0; slot < 2; slot++ {
			shares[party][slot] = elementwiseAdd(x.Shares[party][slot], y.Shares[party][slot])
		}
	}
	return value.ReplicatedRing64Tensor{Plc: op.Placement, Shape: x.Shape, Shares: shares}, nil
}

// mulReplicatedKernel computes a replicated sharing of x*y without a
// resharing round: party i, holding (x_i, x_{i+1}) and (y_i, y_{i+1}),
// contributes z_i = x_i*y_i + x_i*y_{i+1} + x_{i+1}*y_i, and the three
// z_i (which sum to x*y) are laid out like shareKernel's output. No
// fresh randomness from the replicated Setup handle the symbolic
// session caches (§4.5) is mixed in, so the product shares are not
// re-randomized — a simplification noted in the design ledger.
func mulReplicatedKernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, ok := a.(value.ReplicatedRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("mul: unsupported left operand %T", a)
	}
	y, ok := b.(value.ReplicatedRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("mul: unsupported right operand %T", b)
	}
	var z [3][]uint64
	for party := 0; party < 3; party++ {
		xa, xb := x.Shares[party][0], x.Shares[party][1]
		ya, yb := y.Shares[party][0], y.Shares[party][1]
		z[party] = make([]uint64, len(xa))
		for i := range z[party] {
			z[party][i] = xa[i]*ya[i] + xa[i]*yb[i] + xb[i]*ya[i]
		}
	}
	shares := [3][2][]uint64{{z[0], z[1]}, {z[1], z[2]}, {z[2], z[0]}}
	return value.ReplicatedRing64Tensor{Plc: op.Placement, Shape: x.Shape, Shares: shares}, nil
}

func elementwiseAdd(a, b []uint64) []uint64 {
	out := make([]uint64, len(a))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

func elementwiseMul(a, b []uint64) []uint64 {
	out := make([]uint64, len(a))
	for i := range out {
		out[i] = a[i] * b[i]
	}
	return out
}
