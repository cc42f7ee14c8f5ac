// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package value

// Kind tags which concrete tensor or scalar variant a Value holds. The
// dispatcher's second-level match (spec §4.3) switches on Kind alongside
// placement.Kind to select a kernel.
type Kind uint8

const (
	KindUnit Kind = iota
	KindHostFloat32
	KindHostFloat64
	KindHostRing64
	KindHostRing128
	KindHostBit
	KindHostShape
	KindHostString
	KindPrfKey
	KindSeed
	KindFixedpoint
	KindReplicatedRing64
	KindReplicatedRing128
	KindMirroredRing64
	KindMirroredRing128
	KindMirroredFloat64
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "Unit"
	case KindHostFloat32:
		return "HostFloat32Tensor"
	case KindHostFloat64:
		return "HostFloat64Tensor"
	case KindHostRing64:
		return "HostRing64Tensor"
	case KindHostRing128:
		return "HostRing128Tensor"
	case KindHostBit:
		return "HostBitTensor"
	case KindHostShape:
		return "HostShape"
	case KindHostString:
		return "HostString"
	case KindPrfKey:
		return "PrfKey"
	case KindSeed:
		return "Seed"
	case KindFixedpoint:
		return "FixedpointTensor"
	case KindReplicatedRing64:
		return "ReplicatedRing64Tensor"
	case KindReplicatedRing128:
		return "ReplicatedRing128Tensor"
	case KindMirroredRing64:
		return "MirroredRing64Tensor"
	case KindMirroredRing128:
		return "MirroredRing128Tensor"
	case KindMirroredFloat64:
		return "MirroredFloat64Tensor"
	default:
		return "Unknown"
	}
}
