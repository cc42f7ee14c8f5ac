// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package symbolic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/placement"
)

func host(role string) placement.Placement {
	return placement.Host(ids.Role(role))
}

// TestRunLowersIdentityOverConstant mirrors scenario E1: a single
// Constant feeding a single Identity lowers to two operations named by
// position, not by the source graph's own names.
func TestRunLowersIdentityOverConstant(t *testing.T) {
	src, err := computation.New([]computation.Operation{
		{Name: "x", Kind: computation.OpConstant, Placement: host("alice")},
		{Name: "y", Kind: computation.OpIdentity, Inputs: []string{"x"}, Placement: host("alice")},
	})
	require.NoError(t, err)

	lowered, err := Run(nil, src)
	require.NoError(t, err)
	require.Len(t, lowered.Operations, 2)

	op0 := lowered.Operations[0]
	require.Equal(t, "op_0", op0.Name)
	require.Equal(t, computation.OpConstant, op0.Kind)

	op1 := lowered.Operations[1]
	require.Equal(t, "op_1", op1.Name)
	require.Equal(t, computation.OpIdentity, op1.Kind)
	require.Equal(t, []string{"op_0"}, op1.Inputs)
}

// TestRunLowersAddOverTwoInputs mirrors scenario E3: Input, Input, Add,
// Output lowers preserving dependency order under renamed handles.
func TestRunLowersAddOverTwoInputs(t *testing.T) {
	src, err := computation.New([]computation.Operation{
		{Name: "a", Kind: computation.OpInput, Placement: host("alice"), Attrs: computation.Attributes{ArgName: "a"}},
		{Name: "b", Kind: computation.OpInput, Placement: host("alice"), Attrs: computation.Attributes{ArgName: "b"}},
		{Name: "sum", Kind: computation.OpAdd, Inputs: []string{"a", "b"}, Placement: host("alice")},
		{Name: "out", Kind: computation.OpOutput, Inputs: []string{"sum"}, Placement: host("alice")},
	})
	require.NoError(t, err)

	lowered, err := Run(nil, src)
	require.NoError(t, err)
	require.Len(t, lowered.Operations, 4)
	require.Equal(t, []string{"op_0", "op_1"}, lowered.Operations[2].Inputs)
	require.Equal(t, []string{"op_2"}, lowered.Operations[3].Inputs)
}

func TestRunRejectsSendReceive(t *testing.T) {
	src, err := computation.New([]computation.Operation{
		{Name: "r", Kind: computation.OpReceive, Placement: host("alice")},
	})
	require.NoError(t, err)

	_, err = Run(nil, src)
	require.Error(t, err)
	require.True(t, moerrors.Is(err, moerrors.ErrCompilation))

	sendSrc, err := computation.New([]computation.Operation{
		{Name: "x", Kind: computation.OpConstant, Placement: host("alice")},
		{Name: "s", Kind: computation.OpSend, Inputs: []string{"x"}, Placement: host("alice")},
	})
	require.NoError(t, err)

	_, err = Run(nil, sendSrc)
	require.Error(t, err)
	require.True(t, moerrors.Is(err, moerrors.ErrCompilation))
}

func TestSetupIsCachedPerPlacement(t *testing.T) {
	sess := NewSession(nil)
	rep := placement.Replicated([3]ids.Role{"alice", "bob", "carole"})

	h1, err := sess.Setup(rep)
	require.NoError(t, err)
	h2, err := sess.Setup(rep)
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	comp, err := sess.Finalize()
	require.NoError(t, err)
	require.Len(t, comp.Operations, 1, "setup should be emitted exactly once despite two requests")
}

func TestSetupRejectsNonReplicatedPlacement(t *testing.T) {
	sess := NewSession(nil)
	_, err := sess.Setup(host("alice"))
	require.Error(t, err)
	require.True(t, moerrors.Is(err, moerrors.ErrInvalidArgument))
}

func TestFinalizeFailsWhenLockHeld(t *testing.T) {
	sess := NewSession(nil)
	sess.mu.Lock()
	_, err := sess.Finalize()
	sess.mu.Unlock()
	require.Error(t, err)
	require.True(t, moerrors.Is(err, moerrors.ErrCompilation))
}

func TestAddNRejectsEmptyOperandListAtLowering(t *testing.T) {
	src := computation.Computation{Operations: []computation.Operation{
		{Name: "s", Kind: computation.OpAddN, Placement: host("alice")},
	}}
	_, err := Run(nil, src)
	require.Error(t, err)
}
