// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hostkernels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/moose/computation"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

func host() placement.Placement { return placement.Host(ids.Role("alice")) }

func emptyCtx() *kernel.Context {
	return &kernel.Context{Ctx: context.Background()}
}

func TestBitDecomposeComposeRoundTrip(t *testing.T) {
	x := value.HostRing64Tensor{Plc: host(), Shape: []int64{2}, Data: []uint64{0, 0xFFFFFFFFFFFFFFFF}}
	op := computation.Operation{Name: "d", Kind: computation.OpBitDecompose, Placement: host()}

	decomposed, err := bitDecomposeRing64Kernel(emptyCtx(), op, x)
	require.NoError(t, err)

	composeOp := computation.Operation{Name: "c", Kind: computation.OpBitCompose, Placement: host()}
	composed, err := bitComposeRing64Kernel(emptyCtx(), composeOp, decomposed)
	require.NoError(t, err)

	require.Equal(t, x.Data, composed.(value.HostRing64Tensor).Data)
}

func TestBitDecomposeLeadingAxisEnumeratesBitPositions(t *testing.T) {
	x := value.HostRing64Tensor{Plc: host(), Shape: []int64{2}, Data: []uint64{0b01, 0b10}}
	op := computation.Operation{Name: "d", Kind: computation.OpBitDecompose, Placement: host()}

	decomposed, err := bitDecomposeRing64Kernel(emptyCtx(), op, x)
	require.NoError(t, err)

	bt := decomposed.(value.HostBitTensor)
	require.Equal(t, []int64{64, 2}, bt.Shape)
	require.Equal(t, uint8(1), bt.Data[0*2+0]) // bit 0 of element 0 (0b01)
	require.Equal(t, uint8(0), bt.Data[0*2+1]) // bit 0 of element 1 (0b10)
	require.Equal(t, uint8(0), bt.Data[1*2+0]) // bit 1 of element 0
	require.Equal(t, uint8(1), bt.Data[1*2+1]) // bit 1 of element 1
}

func TestShlDimInsertsZeroSlicesAndDropsTop(t *testing.T) {
	// Two elements' worth of decomposed bits, 3 bit positions: bit i's
	// slice is {i, i} so the slice content identifies its source position.
	x := value.HostBitTensor{Plc: host(), Shape: []int64{3, 2}, Data: []uint8{0, 0, 1, 1, 2, 2}}
	op := computation.Operation{
		Name: "s", Kind: computation.OpShlDim, Placement: host(),
		Attrs: computation.Attributes{Amount: 1, BitLength: 3},
	}

	shifted, err := shlDimKernel(emptyCtx(), op, x)
	require.NoError(t, err)

	bt := shifted.(value.HostBitTensor)
	require.Equal(t, []int64{3, 2}, bt.Shape)
	// slice 0 is zero-filled (inserted at the low end).
	require.Equal(t, []uint8{0, 0}, bt.Data[0:2])
	// slice 1 is the input's slice 0.
	require.Equal(t, []uint8{0, 0}, bt.Data[2:4])
	// slice 2 is the input's slice 1; input slice 2 was dropped entirely.
	require.Equal(t, []uint8{1, 1}, bt.Data[4:6])
}

func TestRingInjectBitExtractRoundTrip(t *testing.T) {
	x := value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{0b1010}}
	extractOp := computation.Operation{Name: "e", Kind: computation.OpBitExtract, Placement: host(), Attrs: computation.Attributes{BitIdx: 1}}
	bit, err := bitExtractRing64Kernel(emptyCtx(), extractOp, x)
	require.NoError(t, err)
	require.Equal(t, []uint8{1}, bit.(value.HostBitTensor).Data)

	injectOp := computation.Operation{Name: "i", Kind: computation.OpRingInject, Placement: host(), Attrs: computation.Attributes{BitIdx: 1}}
	injected, err := ringInjectKernel(emptyCtx(), injectOp, bit)
	require.NoError(t, err)
	require.Equal(t, uint64(0b10), injected.(value.HostRing64Tensor).Data[0])
}

func TestSignAgreesWithLess(t *testing.T) {
	x := value.HostRing64Tensor{Plc: host(), Shape: []int64{2}, Data: []uint64{uint64(int64(-5)), 5}}
	signOp := computation.Operation{Name: "s", Kind: computation.OpSign, Placement: host()}
	signed, err := signRing64Kernel(emptyCtx(), signOp, x)
	require.NoError(t, err)

	zero := value.HostRing64Tensor{Plc: host(), Shape: []int64{2}, Data: []uint64{0, 0}}
	lessOp := computation.Operation{Name: "l", Kind: computation.OpLess, Placement: host()}
	less, err := lessRing64Kernel(emptyCtx(), lessOp, x, zero)
	require.NoError(t, err)

	signedData := signed.(value.HostRing64Tensor).Data
	lessData := less.(value.HostRing64Tensor).Data
	for i := range signedData {
		isNegSign := signedData[i] == ^uint64(0)
		isNegLess := lessData[i] == 1
		require.Equal(t, isNegLess, isNegSign, "sign and less must agree on negativity at index %d", i)
	}
}

func TestDispatchFindsRegisteredKernel(t *testing.T) {
	k, err := kernel.Dispatch(computation.OpAdd, host(), []value.Kind{value.KindHostRing64, value.KindHostRing64})
	require.NoError(t, err)
	require.Equal(t, computation.ArityBinary, k.Arity)
}

func TestAddNRejectsEmptyOperandsAtInvoke(t *testing.T) {
	_, err := addNRing64Kernel(emptyCtx(), computation.Operation{Name: "s", Kind: computation.OpAddN, Placement: host()}, nil)
	require.Error(t, err)
}
