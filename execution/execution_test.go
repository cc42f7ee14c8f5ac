// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package execution

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/moose/computation"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

func host() placement.Placement { return placement.Host(ids.Role("alice")) }

func TestExecuteRunsAddOverTwoInputs(t *testing.T) {
	comp, err := computation.New([]computation.Operation{
		{Name: "a", Kind: computation.OpInput, Placement: host(), Attrs: computation.Attributes{ArgName: "a"}},
		{Name: "b", Kind: computation.OpInput, Placement: host(), Attrs: computation.Attributes{ArgName: "b"}},
		{Name: "sum", Kind: computation.OpAdd, Inputs: []string{"a", "b"}, Placement: host()},
		{Name: "out", Kind: computation.OpOutput, Inputs: []string{"sum"}, Placement: host()},
	})
	require.NoError(t, err)

	arguments := map[string]value.Value{
		"a": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{2}},
		"b": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{3}},
	}

	sess := &Session{SessionID: ids.GenerateTestSessionId(), Self: ids.Identity("alice")}
	outputs, err := sess.Execute(context.Background(), comp, arguments)
	require.NoError(t, err)

	out := outputs["out"].(value.HostRing64Tensor)
	require.Equal(t, []uint64{5}, out.Data)
}

func TestExecuteFailsOnMissingArgument(t *testing.T) {
	comp, err := computation.New([]computation.Operation{
		{Name: "a", Kind: computation.OpInput, Placement: host(), Attrs: computation.Attributes{ArgName: "a"}},
		{Name: "out", Kind: computation.OpOutput, Inputs: []string{"a"}, Placement: host()},
	})
	require.NoError(t, err)

	sess := &Session{SessionID: ids.GenerateTestSessionId(), Self: ids.Identity("alice")}
	_, err = sess.Execute(context.Background(), comp, nil)
	require.Error(t, err)
}
