// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package value

import (
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/ring128"
)

// HostFloatTensor is a dense row-major float tensor living on a single
// host, at either 32- or 64-bit precision. Precision is tracked
// separately from the backing []float64 storage: kernels that are
// sensitive to width (cast, fixedpoint encode) consult Width.
type HostFloatTensor struct {
	Plc   placement.Placement
	Shape []int64
	Width int // 32 or 64
	Data  []float64
}

func (t HostFloatTensor) Kind() Kind {
	if t.Width == 32 {
		return KindHostFloat32
	}
	return KindHostFloat64
}

func (t HostFloatTensor) Placement() placement.Placement { return t.Plc }

// NumElements returns the product of Shape, which must equal len(Data).
func (t HostFloatTensor) NumElements() int64 {
	n := int64(1)
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

// HostBitTensor is a dense tensor whose elements are each 0 or 1,
// produced by BitDecompose/BitExtract and consumed by RingInject,
// BitCompose and ShlDim.
type HostBitTensor struct {
	Plc   placement.Placement
	Shape []int64
	Data  []uint8
}

func (HostBitTensor) Kind() Kind                        { return KindHostBit }
func (t HostBitTensor) Placement() placement.Placement { return t.Plc }

// HostRing64Tensor is a dense tensor of 64-bit wrapping two's-complement
// integers.
type HostRing64Tensor struct {
	Plc   placement.Placement
	Shape []int64
	Data  []uint64
}

func (HostRing64Tensor) Kind() Kind                        { return KindHostRing64 }
func (t HostRing64Tensor) Placement() placement.Placement { return t.Plc }

// HostRing128Tensor is a dense tensor of 128-bit wrapping
// two's-complement integers.
type HostRing128Tensor struct {
	Plc   placement.Placement
	Shape []int64
	Data  []ring128.U128
}

func (HostRing128Tensor) Kind() Kind                        { return KindHostRing128 }
func (t HostRing128Tensor) Placement() placement.Placement { return t.Plc }

// BitLength returns the number of bits BitDecompose will produce for
// this tensor's ring width (spec §4.4).
func (HostRing64Tensor) BitLength() int  { return 64 }
func (HostRing128Tensor) BitLength() int { return 128 }
