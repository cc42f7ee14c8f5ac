// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package computation

import (
	"testing"

	"github.com/stretchr/testify/require"

	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/placement"
)

func hostPlacement() placement.Placement {
	return placement.Host(ids.Role("alice"))
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	ops := []Operation{
		{Name: "x", Kind: OpConstant, Placement: hostPlacement()},
		{Name: "x", Kind: OpConstant, Placement: hostPlacement()},
	}
	_, err := New(ops)
	require.Error(t, err)
	require.True(t, moerrors.Is(err, moerrors.ErrInvalidArgument))
}

func TestNewRejectsForwardReference(t *testing.T) {
	ops := []Operation{
		{Name: "y", Kind: OpIdentity, Inputs: []string{"x"}, Placement: hostPlacement()},
		{Name: "x", Kind: OpConstant, Placement: hostPlacement()},
	}
	_, err := New(ops)
	require.Error(t, err)
}

func TestNewRejectsArityMismatch(t *testing.T) {
	ops := []Operation{
		{Name: "x", Kind: OpConstant, Placement: hostPlacement()},
		{Name: "y", Kind: OpAdd, Inputs: []string{"x"}, Placement: hostPlacement()},
	}
	_, err := New(ops)
	require.Error(t, err)
}

func TestNewRejectsEmptyAddN(t *testing.T) {
	ops := []Operation{
		{Name: "x", Kind: OpAddN, Inputs: nil, Placement: hostPlacement()},
	}
	_, err := New(ops)
	require.Error(t, err)
}

func TestNewAcceptsWellFormedGraph(t *testing.T) {
	ops := []Operation{
		{Name: "x", Kind: OpConstant, Placement: hostPlacement()},
		{Name: "y", Kind: OpConstant, Placement: hostPlacement()},
		{Name: "z", Kind: OpAdd, Inputs: []string{"x", "y"}, Placement: hostPlacement()},
	}
	comp, err := New(ops)
	require.NoError(t, err)
	require.Len(t, comp.Operations, 3)

	op, ok := comp.ByName("z")
	require.True(t, ok)
	require.Equal(t, OpAdd, op.Kind)
}

func TestOperatorArityTable(t *testing.T) {
	a, ok := OpFill.Arity()
	require.True(t, ok)
	require.Equal(t, ArityNullary, a)

	a, ok = OpSampleSeeded.Arity()
	require.True(t, ok)
	require.Equal(t, ArityUnary, a)

	a, ok = OpMux.Arity()
	require.True(t, ok)
	require.Equal(t, ArityTernary, a)
}
