// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package value

import (
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/ring128"
)

// ReplicatedRing64Tensor holds a 2-of-3 replicated secret sharing of a
// 64-bit ring tensor: party i holds the pair (Shares[i][0], Shares[i][1]),
// and Shares[i][1] == Shares[(i+1)%3][0] holds as an invariant of any
// correctly constructed sharing.
type ReplicatedRing64Tensor struct {
	Plc    placement.Placement
	Shape  []int64
	Shares [3][2][]uint64
}

func (ReplicatedRing64Tensor) Kind() Kind                        { return KindReplicatedRing64 }
func (t ReplicatedRing64Tensor) Placement() placement.Placement { return t.Plc }

// ReplicatedRing128Tensor is the 128-bit analogue of ReplicatedRing64Tensor.
type ReplicatedRing128Tensor struct {
	Plc    placement.Placement
	Shape  []int64
	Shares [3][2][]ring128.U128
}

func (ReplicatedRing128Tensor) Kind() Kind                        { return KindReplicatedRing128 }
func (t ReplicatedRing128Tensor) Placement() placement.Placement { return t.Plc }

// MirroredRing64Tensor holds one public 64-bit ring tensor, identically
// present on each of a Mirrored3 placement's three hosts (no sharing).
type MirroredRing64Tensor struct {
	Plc   placement.Placement
	Shape []int64
	Data  []uint64
}

func (MirroredRing64Tensor) Kind() Kind                        { return KindMirroredRing64 }
func (t MirroredRing64Tensor) Placement() placement.Placement { return t.Plc }

// MirroredRing128Tensor is the 128-bit analogue of MirroredRing64Tensor.
type MirroredRing128Tensor struct {
	Plc   placement.Placement
	Shape []int64
	Data  []ring128.U128
}

func (MirroredRing128Tensor) Kind() Kind                        { return KindMirroredRing128 }
func (t MirroredRing128Tensor) Placement() placement.Placement { return t.Plc }

// MirroredFloat64Tensor holds one public float64 tensor, identically
// present on each of a Mirrored3 placement's three hosts.
type MirroredFloat64Tensor struct {
	Plc   placement.Placement
	Shape []int64
	Data  []float64
}

func (MirroredFloat64Tensor) Kind() Kind                        { return KindMirroredFloat64 }
func (t MirroredFloat64Tensor) Placement() placement.Placement { return t.Plc }
