// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package value implements the Value tagged union of spec §3: the
// concrete tensor and scalar kinds every kernel produces and consumes.
// Every value knows the placement it lives on; re-placing a value
// without recomputing it is handled by WithPlacement (place.go) for
// concrete values and by symbolicvalue.Place for symbolic ones.
package value

import "github.com/luxfi/moose/placement"

// Value is the common contract every concrete tensor/scalar kind
// implements: it knows its own Kind tag and the placement it lives on.
type Value interface {
	Kind() Kind
	Placement() placement.Placement
}

// Unit is the nullary "no value" token produced by operators that only
// have side effects (e.g. Save).
type Unit struct {
	Plc placement.Placement
}

func (Unit) Kind() Kind                        { return KindUnit }
func (u Unit) Placement() placement.Placement { return u.Plc }

// HostShape is a tensor shape living on a single host.
type HostShape struct {
	Plc  placement.Placement
	Dims []int64
}

func (HostShape) Kind() Kind                        { return KindHostShape }
func (s HostShape) Placement() placement.Placement { return s.Plc }

// NumElements returns the product of all dimensions.
func (s HostShape) NumElements() int64 {
	n := int64(1)
	for _, d := range s.Dims {
		n *= d
	}
	return n
}

// HostString is a scalar string value.
type HostString struct {
	Plc   placement.Placement
	Value string
}

func (HostString) Kind() Kind                        { return KindHostString }
func (s HostString) Placement() placement.Placement { return s.Plc }

// PrfKey is replicated pseudo-random function key material, as produced
// by PrfKeyGen and by replicated setup generation.
type PrfKey struct {
	Plc   placement.Placement
	Bytes [16]byte
}

func (PrfKey) Kind() Kind                        { return KindPrfKey }
func (k PrfKey) Placement() placement.Placement { return k.Plc }

// Seed is PRNG seed material, as produced by DeriveSeed and consumed by
// SampleSeeded.
type Seed struct {
	Plc   placement.Placement
	Bytes [16]byte
}

func (Seed) Kind() Kind                        { return KindSeed }
func (s Seed) Placement() placement.Placement { return s.Plc }
