// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hostkernels

import (
	"math"

	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/ring128"
	"github.com/luxfi/moose/value"
)

func init() {
	kernel.Register(computation.OpFixedpointEncode, placement.KindHost,
		[]value.Kind{value.KindHostFloat64}, unaryKernel(fixedpointEncodeKernel))
	kernel.Register(computation.OpFixedpointDecode, placement.KindHost,
		[]value.Kind{value.KindHostRing128}, unaryKernel(fixedpointDecodeKernel))
	kernel.Register(computation.OpRingFixedpointMean, placement.KindHost,
		[]value.Kind{value.KindHostRing128}, unaryKernel(ringFixedpointMeanKernel))

	// fixedpoint_encode/decode on a 32-bit float operand is explicitly
	// left unimplemented: this scheme is defined in terms of a 128-bit
	// ring, and no precision contract for a 32-bit source is given.
}

// scalingFactor returns base^exp as a float64, the scale fixedpoint_encode
// and fixedpoint_decode use to move between floats and ring elements.
func scalingFactor(base uint64, exp int64) float64 {
	if base == 0 {
		base = 2
	}
	return math.Pow(float64(base), float64(exp))
}

func fixedpointEncodeKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	ft, ok := a.(value.HostFloatTensor)
	if !ok || ft.Width != 64 {
		return nil, moerrors.Kernel("fixedpoint_encode: expected a 64-bit float tensor, got %T", a)
	}
	scale := scalingFactor(op.Attrs.ScalingBase, op.Attrs.ScalingExp)
	out := make([]ring128.U128, len(ft.Data))
	for i, x := range ft.Data {
		out[i] = ring128.FromInt64(int64(math.Round(x * scale)))
	}
	return value.HostRing128Tensor{Plc: op.Placement, Shape: ft.Shape, Data: out}, nil
}

func fixedpointDecodeKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing128Tensor)
	if !ok {
		return nil, moerrors.Kernel("fixedpoint_decode: expected a ring128 tensor, got %T", a)
	}
	scale := scalingFactor(op.Attrs.ScalingBase, op.Attrs.ScalingExp)
	out := make([]float64, len(rt.Data))
	for i, x := range rt.Data {
		out[i] = ring128ToSignedFloat(x) / scale
	}
	return value.HostFloatTensor{Plc: op.Placement, Shape: rt.Shape, Width: 64, Data: out}, nil
}

// ring128ToSignedFloat interprets x as a two's-complement 128-bit integer
// and returns its nearest float64 value. Values outside float64's exact
// integer range lose precision, which is inherent to decoding a 128-bit
// ring element back into a 64-bit float.
func ring128ToSignedFloat(x ring128.U128) float64 {
	if x.IsNegative() {
		neg := x.Neg()
		return -(float64(neg.Hi)*18446744073709551616.0 + float64(neg.Lo))
	}
	return float64(x.Hi)*18446744073709551616.0 + float64(x.Lo)
}

// ringFixedpointMeanKernel sums the decoded elements along attrs.Axis (or
// the whole tensor when Axis is nil) and scales the sums by base^exp —
// with NO per-element division. The scaling factor stands in for the
// reciprocal of the reduced count: a caller wanting an actual mean picks
// exp so that base^exp approximates 1/n, the same way RingFixedpointMean
// is specified.
func ringFixedpointMeanKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	rt, ok := a.(value.HostRing128Tensor)
	if !ok {
		return nil, moerrors.Kernel("ring_fixedpoint_mean: expected a ring128 tensor, got %T", a)
	}
	if len(rt.Data) == 0 {
		return nil, moerrors.InvalidArgument("ring_fixedpoint_mean: empty tensor")
	}
	decoded := make([]float64, len(rt.Data))
	for i, x := range rt.Data {
		decoded[i] = ring128ToSignedFloat(x)
	}

	var sums []float64
	var outShape []int64
	if op.Attrs.Axis == nil {
		var sum float64
		for _, x := range decoded {
			sum += x
		}
		sums, outShape = []float64{sum}, []int64{}
	} else {
		axis := int(*op.Attrs.Axis)
		if axis < 0 || axis >= len(rt.Shape) {
			return nil, moerrors.InvalidArgument("ring_fixedpoint_mean: axis %d out of range for shape %v", axis, rt.Shape)
		}
		sums, outShape = sumAlongAxis(decoded, rt.Shape, axis)
	}

	scale := scalingFactor(op.Attrs.ScalingBase, op.Attrs.ScalingExp)
	out := make([]ring128.U128, len(sums))
	for i, s := range sums {
		out[i] = ring128.FromInt64(int64(math.Round(s * scale)))
	}
	return value.HostRing128Tensor{Plc: op.Placement, Shape: outShape, Data: out}, nil
}

// sumAlongAxis reduces a row-major tensor along axis, returning the
// reduced data and the shape with that axis removed.
func sumAlongAxis(data []float64, shape []int64, axis int) ([]float64, []int64) {
	outer, axisLen, inner := int64(1), shape[axis], int64(1)
	for i, d := range shape {
		switch {
		case i < axis:
			outer *= d
		case i > axis:
			inner *= d
		}
	}
	out := make([]float64, outer*inner)
	for o := int64(0); o < outer; o++ {
		for i := int64(0); i < inner; i++ {
			var sum float64
			for k := int64(0); k < axisLen; k++ {
				sum += data[o*axisLen*inner+k*inner+i]
			}
			out[o*inner+i] = sum
		}
	}
	outShape := make([]int64, 0, len(shape)-1)
	for i, d := range shape {
		if i != axis {
			outShape = append(outShape, d)
		}
	}
	return out, outShape
}
