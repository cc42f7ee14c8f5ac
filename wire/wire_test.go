// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/moose/computation"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

func host() placement.Placement { return placement.Host(ids.Role("alice")) }

func TestValueRoundTrip(t *testing.T) {
	v := value.HostRing64Tensor{Plc: host(), Shape: []int64{3}, Data: []uint64{1, 2, 3}}
	data, err := EncodeValue(v)
	require.NoError(t, err)

	decoded, err := DecodeValue(data)
	require.NoError(t, err)

	got := decoded.(value.HostRing64Tensor)
	require.Equal(t, v.Data, got.Data)
	require.True(t, v.Plc.Equal(got.Plc))
}

func TestValuesMapRoundTrip(t *testing.T) {
	values := map[string]value.Value{
		"a": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{7}},
		"b": value.Unit{Plc: host()},
	}
	data, err := EncodeValues(values)
	require.NoError(t, err)

	decoded, err := DecodeValues(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
}

func TestComputationRoundTrip(t *testing.T) {
	comp, err := computation.New([]computation.Operation{
		{Name: "x", Kind: computation.OpConstant, Placement: host()},
		{Name: "y", Kind: computation.OpIdentity, Inputs: []string{"x"}, Placement: host()},
	})
	require.NoError(t, err)

	data, err := EncodeComputation(comp)
	require.NoError(t, err)

	decoded, err := DecodeComputation(data)
	require.NoError(t, err)
	require.Len(t, decoded.Operations, 2)
	require.Equal(t, computation.OpIdentity, decoded.Operations[1].Kind)
	require.True(t, comp.Operations[1].Placement.Equal(decoded.Operations[1].Placement))
}

func TestRoleAssignmentRoundTrip(t *testing.T) {
	roles := ids.RoleAssignment{ids.Role("alice"): ids.Identity("10.0.0.1:9000")}
	data, err := EncodeRoleAssignment(roles)
	require.NoError(t, err)

	decoded, err := DecodeRoleAssignment(data)
	require.NoError(t, err)
	require.Equal(t, roles, decoded)
}
