// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package value

import "github.com/luxfi/moose/placement"

// WithPlacement returns a copy of v annotated with plc instead of its
// current placement. It never moves data across hosts — it is the
// concrete half of the Place operation (spec §4.1): re-homing the
// annotation only, used when a kernel already produced a value at the
// placement its caller wants and no conversion operator is needed.
func WithPlacement(v Value, plc placement.Placement) Value {
	switch t := v.(type) {
	case Unit:
		t.Plc = plc
		return t
	case HostShape:
		t.Plc = plc
		return t
	case HostString:
		t.Plc = plc
		return t
	case PrfKey:
		t.Plc = plc
		return t
	case Seed:
		t.Plc = plc
		return t
	case HostFloatTensor:
		t.Plc = plc
		return t
	case HostBitTensor:
		t.Plc = plc
		return t
	case HostRing64Tensor:
		t.Plc = plc
		return t
	case HostRing128Tensor:
		t.Plc = plc
		return t
	case FixedpointTensor:
		t.Plc = plc
		return t
	case ReplicatedRing64Tensor:
		t.Plc = plc
		return t
	case ReplicatedRing128Tensor:
		t.Plc = plc
		return t
	case MirroredRing64Tensor:
		t.Plc = plc
		return t
	case MirroredRing128Tensor:
		t.Plc = plc
		return t
	case MirroredFloat64Tensor:
		t.Plc = plc
		return t
	default:
		return v
	}
}
