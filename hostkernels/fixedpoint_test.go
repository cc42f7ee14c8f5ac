// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hostkernels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/moose/computation"
	"github.com/luxfi/moose/ring128"
	"github.com/luxfi/moose/value"
)

func TestFixedpointEncodeDecodeRoundTrip(t *testing.T) {
	ft := value.HostFloatTensor{Plc: host(), Shape: []int64{2}, Width: 64, Data: []float64{1.5, -2.25}}
	encodeOp := computation.Operation{Name: "e", Kind: computation.OpFixedpointEncode, Placement: host(),
		Attrs: computation.Attributes{ScalingBase: 2, ScalingExp: 16}}
	encoded, err := fixedpointEncodeKernel(emptyCtx(), encodeOp, ft)
	require.NoError(t, err)

	decodeOp := computation.Operation{Name: "d", Kind: computation.OpFixedpointDecode, Placement: host(),
		Attrs: computation.Attributes{ScalingBase: 2, ScalingExp: 16}}
	decoded, err := fixedpointDecodeKernel(emptyCtx(), decodeOp, encoded)
	require.NoError(t, err)

	require.Equal(t, ft.Data, decoded.(value.HostFloatTensor).Data)
}

// TestRingFixedpointMeanScalesSumWithoutDividing locks in spec §4.4's
// sum-then-scale contract: the kernel must not divide by the reduced
// element count the way an arithmetic mean would.
func TestRingFixedpointMeanScalesSumWithoutDividing(t *testing.T) {
	x := value.HostRing128Tensor{Plc: host(), Shape: []int64{4}, Data: []ring128.U128{
		ring128.FromInt64(1), ring128.FromInt64(2), ring128.FromInt64(3), ring128.FromInt64(4),
	}}
	op := computation.Operation{Name: "m", Kind: computation.OpRingFixedpointMean, Placement: host(),
		Attrs: computation.Attributes{ScalingBase: 2, ScalingExp: 1}}

	out, err := ringFixedpointMeanKernel(emptyCtx(), op, x)
	require.NoError(t, err)

	rt := out.(value.HostRing128Tensor)
	require.Empty(t, rt.Shape)
	// sum = 10, scale = 2^1 = 2, so out = 20, NOT 10/4*2 = 5.
	require.Equal(t, ring128.FromInt64(20), rt.Data[0])
}

// TestRingFixedpointMeanReducesAlongAxis checks that a 2-D tensor is
// reduced only along attrs.axis, not collapsed to a single scalar.
func TestRingFixedpointMeanReducesAlongAxis(t *testing.T) {
	// shape [2, 2]: rows {1, 2} and {3, 4}.
	x := value.HostRing128Tensor{Plc: host(), Shape: []int64{2, 2}, Data: []ring128.U128{
		ring128.FromInt64(1), ring128.FromInt64(2),
		ring128.FromInt64(3), ring128.FromInt64(4),
	}}
	axis := int64(0)
	op := computation.Operation{Name: "m", Kind: computation.OpRingFixedpointMean, Placement: host(),
		Attrs: computation.Attributes{Axis: &axis, ScalingBase: 2, ScalingExp: 0}}

	out, err := ringFixedpointMeanKernel(emptyCtx(), op, x)
	require.NoError(t, err)

	rt := out.(value.HostRing128Tensor)
	require.Equal(t, []int64{2}, rt.Shape)
	// column sums: 1+3=4, 2+4=6, scale = 2^0 = 1.
	require.Equal(t, ring128.FromInt64(4), rt.Data[0])
	require.Equal(t, ring128.FromInt64(6), rt.Data[1])
}
