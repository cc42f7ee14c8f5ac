// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package symbolicvalue implements the SymbolicValue tagged union of
// spec §3: a parallel universe to value.Value where each tensor is
// either a Symbolic handle referencing a not-yet-computed operation
// output, or a Concrete value whose sub-parts may themselves still be
// symbolic (spec §9: "must preserve placement recoverability in either
// branch ... modeled as a tagged variant, not inheritance").
package symbolicvalue

import (
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

// Handle is an opaque reference to a not-yet-computed operation output:
// just enough to wire it into a later operation's Inputs list and to
// know where it will live.
type Handle struct {
	OpName string
	Plc    placement.Placement
}

// SymbolicValue is the union: Symbolic(handle) or Concrete(v), or — for
// replicated/mirrored containers — a composite whose per-party slots are
// themselves SymbolicValue.
type SymbolicValue interface {
	Placement() placement.Placement
	isSymbolicValue()
}

// Symbolic wraps a Handle: the value is not yet computed.
type Symbolic struct {
	H Handle
}

func (s Symbolic) Placement() placement.Placement { return s.H.Plc }
func (Symbolic) isSymbolicValue()                  {}

// Concrete wraps an already-materialized value.Value.
type Concrete struct {
	V value.Value
}

func (c Concrete) Placement() placement.Placement { return c.V.Placement() }
func (Concrete) isSymbolicValue()                  {}

// Replicated is a 2-of-3 replicated container whose six share slots may
// each independently be Symbolic or Concrete.
type Replicated struct {
	Plc    placement.Placement
	Shares [3][2]SymbolicValue
}

func (r Replicated) Placement() placement.Placement { return r.Plc }
func (Replicated) isSymbolicValue()                  {}

// Mirrored is a three-host container whose three identical-value slots
// may each independently be Symbolic or Concrete.
type Mirrored struct {
	Plc    placement.Placement
	Values [3]SymbolicValue
}

func (m Mirrored) Placement() placement.Placement { return m.Plc }
func (Mirrored) isSymbolicValue()                  {}

// Place rewrites v's placement annotation to plc. For a Symbolic handle
// this rewrites the handle's placement field (spec §4.1: "a minimum-
// viable implementation rewrites the handle and defers any such
// materialization to a later pass"). For Concrete it recurses into
// value.WithPlacement. For composites it recurses into every slot.
func Place(v SymbolicValue, plc placement.Placement) SymbolicValue {
	switch t := v.(type) {
	case Symbolic:
		t.H.Plc = plc
		return t
	case Concrete:
		return Concrete{V: value.WithPlacement(t.V, plc)}
	case Replicated:
		t.Plc = plc
		for i := range t.Shares {
			for j := range t.Shares[i] {
				if t.Shares[i][j] != nil {
					t.Shares[i][j] = Place(t.Shares[i][j], plc)
				}
			}
		}
		return t
	case Mirrored:
		t.Plc = plc
		for i := range t.Values {
			if t.Values[i] != nil {
				t.Values[i] = Place(t.Values[i], plc)
			}
		}
		return t
	default:
		return v
	}
}
