// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hostkernels

import (
	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/ring128"
	"github.com/luxfi/moose/value"
)

func unaryKernel(fn func(ctx *kernel.Context, op computation.Operation, a value.Value) (value.Value, error)) kernel.Kernel {
	return kernel.Kernel{Arity: computation.ArityUnary, Unary: fn}
}

func init() {
	kernel.Register(computation.OpIdentity, placement.KindHost, []value.Kind{value.KindHostRing64}, unaryKernel(identityKernel))
	kernel.Register(computation.OpNeg, placement.KindHost, []value.Kind{value.KindHostRing64}, unaryKernel(negRing64Kernel))
	kernel.Register(computation.OpNeg, placement.KindHost, []value.Kind{value.KindHostRing128}, unaryKernel(negRing128Kernel))
	kernel.Register(computation.OpShape, placement.KindHost, []value.Kind{value.KindHostRing64}, unaryKernel(shapeKernel))
	kernel.Register(computation.OpOutput, placement.KindHost, []value.Kind{value.KindHostRing64}, unaryKernel(identityKernel))

	kernel.Register(computation.OpMsb, placement.KindHost, []value.Kind{value.KindHostRing64}, unaryKernel(msbRing64Kernel))
	kernel.Register(computation.OpSign, placement.KindHost, []value.Kind{value.KindHostRing64}, unaryKernel(signRing64Kernel))

	kernel.Register(computation.OpBitDecompose, placement.KindHost, []value.Kind{value.KindHostRing64}, unaryKernel(bitDecomposeRing64Kernel))
	kernel.Register(computation.OpBitCompose, placement.KindHost, []value.Kind{value.KindHostBit}, unaryKernel(bitComposeRing64Kernel))
	kernel.Register(computation.OpBitExtract, placement.KindHost, []value.Kind{value.KindHostRing64}, unaryKernel(bitExtractRing64Kernel))
	kernel.Register(computation.OpRingInject, placement.KindHost, []value.Kind{value.KindHostBit}, unaryKernel(ringInjectKernel))

	kernel.Register(computation.OpShlDim, placement.KindHost, []value.Kind{value.KindHostBit}, unaryKernel(shlDimKernel))
}

func identityKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	return value.WithPlacement(a, op.Placement), nil
}

func shapeKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("shape: unsupported operand %T", a)
	}
	return value.HostShape{Plc: op.Placement, Dims: rt.Shape}, nil
}

func negRing64Kernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("neg: unsupported operand %T", a)
	}
	return ring64Unary(value.HostRing64Tensor{Plc: op.Placement, Shape: rt.Shape, Data: rt.Data}, func(x uint64) uint64 { return -x }), nil
}

func negRing128Kernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing128Tensor)
	if !ok {
		return nil, moerrors.Kernel("neg: unsupported operand %T", a)
	}
	return ring128Unary(value.HostRing128Tensor{Plc: op.Placement, Shape: rt.Shape, Data: rt.Data}, func(x ring128.U128) ring128.U128 { return x.Neg() }), nil
}

// msbRing64Kernel extracts each element's top bit (its sign bit under
// two's-complement interpretation) as a 0/1 ring element.
func msbRing64Kernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("msb: unsupported operand %T", a)
	}
	return ring64Unary(value.HostRing64Tensor{Plc: op.Placement, Shape: rt.Shape, Data: rt.Data}, func(x uint64) uint64 { return x >> 63 }), nil
}

// signRing64Kernel returns, for each element, the all-ones ring encoding
// of -1 when the element is negative (msb set) or 1 otherwise. Together
// with Msb and Less this is what the §8 sign-consistency property
// exercises: sign(x) agrees with x < 0.
func signRing64Kernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("sign: unsupported operand %T", a)
	}
	return ring64Unary(value.HostRing64Tensor{Plc: op.Placement, Shape: rt.Shape, Data: rt.Data}, func(x uint64) uint64 {
		if x>>63 == 1 {
			return ^uint64(0)
		}
		return 1
	}), nil
}

// bitDecomposeRing64Kernel expands every 64-bit ring element into 64
// individual bits, stacked as a new leading dimension (§4.4: the bit
// tensor's first axis enumerates bit positions), so that
// bit_compose(bit_decompose(x)) == x (§8 property). Element j's bit i
// lands at out.Data[i*n+j], i.e. bit position varies slowest.
func bitDecomposeRing64Kernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("bit_decompose: unsupported operand %T", a)
	}
	n := len(rt.Data)
	out := make([]uint8, 64*n)
	for j, x := range rt.Data {
		for i := 0; i < 64; i++ {
			out[i*n+j] = uint8((x >> uint(i)) & 1)
		}
	}
	shape := append([]int64{64}, rt.Shape...)
	return value.HostBitTensor{Plc: op.Placement, Shape: shape, Data: out}, nil
}

func bitComposeRing64Kernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	bt, ok := a.(value.HostBitTensor)
	if !ok {
		return nil, moerrors.Kernel("bit_compose: unsupported operand %T", a)
	}
	if len(bt.Shape) == 0 || bt.Shape[0] != 64 {
		return nil, moerrors.InvalidArgument("bit_compose: leading dimension must be 64, got shape %v", bt.Shape)
	}
	n := len(bt.Data) / 64
	out := make([]uint64, n)
	for j := 0; j < n; j++ {
		var x uint64
		for b := 0; b < 64; b++ {
			x |= uint64(bt.Data[b*n+j]) << uint(b)
		}
		out[j] = x
	}
	return value.HostRing64Tensor{Plc: op.Placement, Shape: bt.Shape[1:], Data: out}, nil
}

func bitExtractRing64Kernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing64Tensor)
	if !ok {
		return nil, moerrors.Kernel("bit_extract: unsupported operand %T", a)
	}
	if op.Attrs.BitIdx < 0 || op.Attrs.BitIdx >= 64 {
		return nil, moerrors.InvalidArgument("bit_extract: bit_idx %d out of range", op.Attrs.BitIdx)
	}
	out := make([]uint8, len(rt.Data))
	for i, x := range rt.Data {
		out[i] = uint8((x >> uint(op.Attrs.BitIdx)) & 1)
	}
	return value.HostBitTensor{Plc: op.Placement, Shape: rt.Shape, Data: out}, nil
}

// ringInjectKernel lifts a 0/1 bit tensor into the ring at attrs.bit_idx,
// the inverse direction of bit_extract: ring_inject(bit_extract(x, i), i)
// reproduces just bit i of x, not x itself (§8 property is stated for
// that single-bit round trip, not for the whole value).
func ringInjectKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	bt, ok := a.(value.HostBitTensor)
	if !ok {
		return nil, moerrors.Kernel("ring_inject: unsupported operand %T", a)
	}
	if op.Attrs.BitIdx < 0 || op.Attrs.BitIdx >= 64 {
		return nil, moerrors.InvalidArgument("ring_inject: bit_idx %d out of range", op.Attrs.BitIdx)
	}
	out := make([]uint64, len(bt.Data))
	for i, b := range bt.Data {
		out[i] = uint64(b&1) << uint(op.Attrs.BitIdx)
	}
	return value.HostRing64Tensor{Plc: op.Placement, Shape: bt.Shape, Data: out}, nil
}

// shlDimKernel implements HostShlDim(amount, bit_length, x): a shift
// along the leading (bit-position) axis, inserting zero slices at the
// low end and dropping the top `amount` slices, truncated to
// bit_length. Its natural input is BitDecompose's output, whose leading
// axis enumerates bit positions.
func shlDimKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	bt, ok := a.(value.HostBitTensor)
	if !ok {
		return nil, moerrors.Kernel("shl_dim: unsupported operand %T", a)
	}
	if len(bt.Shape) == 0 {
		return nil, moerrors.InvalidArgument("shl_dim: operand has no leading axis")
	}
	n := bt.Shape[0]
	bitLength := int64(op.Attrs.BitLength)
	if bitLength == 0 {
		bitLength = n
	}
	amount := int64(op.Attrs.Amount)

	sliceSize := int64(len(bt.Data))
	if n != 0 {
		sliceSize /= n
	}

	out := make([]uint8, bitLength*sliceSize)
	for i := int64(0); i < bitLength; i++ {
		src := i - amount
		if src < 0 || src >= n {
			continue
		}
		copy(out[i*sliceSize:(i+1)*sliceSize], bt.Data[src*sliceSize:(src+1)*sliceSize])
	}

	outShape := append([]int64{bitLength}, bt.Shape[1:]...)
	return value.HostBitTensor{Plc: op.Placement, Shape: outShape, Data: out}, nil
}
