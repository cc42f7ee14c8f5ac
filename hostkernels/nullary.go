// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hostkernels implements the concrete §4.4 kernels for values
// living on a single Host placement: ring arithmetic, bit tensors, float
// tensors, and the conversions between them. Kernel math itself (beyond
// the properties spec §8 requires) is illustrative, per spec §1's
// scoping of "concrete implementations of individual tensor operations"
// out of the core.
package hostkernels

import (
	"crypto/rand"

	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

func init() {
	kernel.Register(computation.OpConstant, placement.KindHost, nil, nullaryKernel(constantKernel))
	kernel.Register(computation.OpInput, placement.KindHost, nil, nullaryKernel(inputKernel))
	kernel.Register(computation.OpPrfKeyGen, placement.KindHost, nil, nullaryKernel(prfKeyGenKernel))
	kernel.Register(computation.OpFill, placement.KindHost, nil, nullaryKernel(fillKernel))
	kernel.Register(computation.OpOnes, placement.KindHost, nil, nullaryKernel(onesKernel))
	kernel.Register(computation.OpZeros, placement.KindHost, nil, nullaryKernel(zerosKernel))
	kernel.Register(computation.OpSample, placement.KindHost, nil, nullaryKernel(sampleKernel))
}

func nullaryKernel(fn func(ctx *kernel.Context, op computation.Operation) (value.Value, error)) kernel.Kernel {
	return kernel.Kernel{Arity: computation.ArityNullary, Nullary: fn}
}

func constantKernel(_ *kernel.Context, op computation.Operation) (value.Value, error) {
	if op.Attrs.Value == nil {
		return nil, moerrors.InvalidArgument("constant operation %q has no value attribute", op.Name)
	}
	return value.WithPlacement(op.Attrs.Value, op.Placement), nil
}

func inputKernel(ctx *kernel.Context, op computation.Operation) (value.Value, error) {
	name := op.Attrs.ArgName
	if name == "" {
		name = op.Name
	}
	v, ok := ctx.Argument(name)
	if !ok {
		return nil, moerrors.MissingArgument(name)
	}
	return value.WithPlacement(v, op.Placement), nil
}

func prfKeyGenKernel(_ *kernel.Context, op computation.Operation) (value.Value, error) {
	var key value.PrfKey
	key.Plc = op.Placement
	if _, err := rand.Read(key.Bytes[:]); err != nil {
		return nil, moerrors.Kernel("prf_key_gen: %v", err)
	}
	return key, nil
}

// fillKernel fills attrs.Shape with the single ring64 element carried in
// attrs.Value.
func fillKernel(_ *kernel.Context, op computation.Operation) (value.Value, error) {
	fv, ok := op.Attrs.Value.(value.HostRing64Tensor)
	if !ok || len(fv.Data) != 1 {
		return nil, moerrors.InvalidArgument("fill operation %q needs a single-element ring64 value attribute", op.Name)
	}
	return filledRing(op.Placement, op.Attrs.Shape, fv.Data[0])
}

func onesKernel(_ *kernel.Context, op computation.Operation) (value.Value, error) {
	return filledRing(op.Placement, op.Attrs.Shape, 1)
}

func zerosKernel(_ *kernel.Context, op computation.Operation) (value.Value, error) {
	return filledRing(op.Placement, op.Attrs.Shape, 0)
}

func filledRing(plc placement.Placement, shape []int64, fillVal uint64) (value.Value, error) {
	n := numElements(shape)
	data := make([]uint64, n)
	for i := range data {
		data[i] = fillVal
	}
	return value.HostRing64Tensor{Plc: plc, Shape: shape, Data: data}, nil
}

func numElements(shape []int64) int64 {
	n := int64(1)
	for _, d := range shape {
		n *= d
	}
	return n
}

// sampleKernel produces uniform random ring64 material. A real backend
// would draw from an agreed PRNG seeded via sample_seeded for
// reproducibility across parties; here it draws fresh entropy per call,
// which is correct for Sample but not for any protocol requiring
// correlated randomness (that is sample_seeded's job, not sample's).
func sampleKernel(_ *kernel.Context, op computation.Operation) (value.Value, error) {
	n := numElements(op.Attrs.Shape)
	data := make([]uint64, n)
	buf := make([]byte, 8*n)
	if _, err := rand.Read(buf); err != nil {
		return nil, moerrors.Kernel("sample: %v", err)
	}
	for i := range data {
		var v uint64
		for b := 0; b < 8; b++ {
			v |= uint64(buf[i*8+b]) << (8 * b)
		}
		data[i] = v
	}
	return value.HostRing64Tensor{Plc: op.Placement, Shape: op.Attrs.Shape, Data: data}, nil
}
