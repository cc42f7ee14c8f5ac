// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package placement

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/moose/ids"
)

func TestReplicatedRejectsDuplicateRoles(t *testing.T) {
	require.Panics(t, func() {
		Replicated([3]ids.Role{"alice", "alice", "bob"})
	})
}

func TestConversionFor(t *testing.T) {
	aliceHost := Host(ids.Role("alice"))
	rep := Replicated([3]ids.Role{"alice", "bob", "carole"})
	mir := Mirrored3([3]ids.Role{"alice", "bob", "carole"})

	require.Equal(t, ConversionNoop, ConversionFor(aliceHost, aliceHost))
	require.Equal(t, ConversionMirror, ConversionFor(aliceHost, mir))
	require.Equal(t, ConversionDemirror, ConversionFor(mir, aliceHost))
	require.Equal(t, ConversionShare, ConversionFor(aliceHost, rep))
	require.Equal(t, ConversionReveal, ConversionFor(rep, aliceHost))
	require.Equal(t, ConversionUnsupported, ConversionFor(aliceHost, Host(ids.Role("bob"))))
}

func TestPlacementGobRoundTrip(t *testing.T) {
	rep := Replicated([3]ids.Role{"alice", "bob", "carole"})

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(&rep))

	var decoded Placement
	require.NoError(t, gob.NewDecoder(&buf).Decode(&decoded))

	require.True(t, rep.Equal(decoded))
	require.Equal(t, rep.Roles(), decoded.Roles())
}
