// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package computation

import (
	"fmt"

	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

// Attributes carries an operator's static, compile-time-known operands —
// everything that is not itself the output of a prior operation. Only
// the fields relevant to a given OperatorKind are populated; kernels
// read the ones they expect and ignore the rest.
type Attributes struct {
	Axis        *int64
	Axes        []int64
	Indices     []int64
	Shape       []int64
	Value       value.Value // Constant, Fill
	ScalingBase uint64      // FixedpointEncode/Decode, RingFixedpointMean
	ScalingExp  int64
	SliceBegin  []int64
	SliceEnd    []int64
	BitIdx      int // BitExtract, RingInject
	Amount      int // Shl, Shr, ShlDim
	BitLength   int // ShlDim
	ArgName     string // Input: name to look up in launch arguments
	Key         string // Send, Receive: rendezvous key
	Query       string // Send, Receive: peer identity
	DebugLabel  string // optional debug label, not load-bearing for execution
}

// Operation is one node of a Computation: an operator invocation with
// named operands and a placement (spec §3).
type Operation struct {
	Name      string
	Kind      OperatorKind
	Inputs    []string
	Placement placement.Placement
	Attrs     Attributes
}

// Computation is the ordered sequence of Operations produced by the
// symbolic session or deserialized at launch (spec §3). It is immutable
// once built.
type Computation struct {
	Operations []Operation
}

// New validates and wraps ops into a Computation. It enforces the core
// graph invariants: unique names, every input referring to a strictly
// prior operation, and arity matching the operator's declared arity.
func New(ops []Operation) (Computation, error) {
	seen := make(map[string]int, len(ops))
	for i, op := range ops {
		if _, dup := seen[op.Name]; dup {
			return Computation{}, moerrors.InvalidArgument("duplicate operation name %q", op.Name)
		}
		seen[op.Name] = i

		for _, in := range op.Inputs {
			j, ok := seen[in]
			if !ok || j >= i {
				return Computation{}, moerrors.InvalidArgument(
					"operation %q references input %q which is not a prior operation", op.Name, in)
			}
		}

		arity, ok := op.Kind.Arity()
		if !ok {
			return Computation{}, moerrors.InvalidArgument("operation %q: unclassified operator %s", op.Name, op.Kind)
		}
		if n := arity.NumOperands(); n >= 0 && len(op.Inputs) != n {
			return Computation{}, moerrors.InvalidArgument(
				"operation %q: operator %s expects %d operand(s), got %d", op.Name, op.Kind, n, len(op.Inputs))
		}
		if arity == ArityVariadic && op.Kind == OpAddN && len(op.Inputs) == 0 {
			return Computation{}, moerrors.InvalidArgument("operation %q: add_n requires at least one operand", op.Name)
		}
	}
	return Computation{Operations: ops}, nil
}

// ByName returns the Operation named name, if present.
func (c Computation) ByName(name string) (Operation, bool) {
	for _, op := range c.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

func (op Operation) String() string {
	return fmt.Sprintf("%s = %s(%v) @ %s", op.Name, op.Kind, op.Inputs, op.Placement)
}
