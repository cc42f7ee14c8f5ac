// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choreography

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/moose/ids"
)

func TestPeerIdentityMissingFromPlainContext(t *testing.T) {
	_, ok := PeerIdentity(context.Background())
	require.False(t, ok)
}

func TestAuthorizeOwnerRole(t *testing.T) {
	ownerOnly := func(ownerRole ids.Role) Authorize {
		return func(ctx context.Context, sessionID ids.SessionId, roles ids.RoleAssignment) error {
			caller, ok := ctx.Value(testIdentityKey{}).(ids.Identity)
			if !ok {
				return unauthorized("no caller identity in context")
			}
			if roles[ownerRole] != caller {
				return unauthorized("caller does not hold the owner role")
			}
			return nil
		}
	}

	auth := ownerOnly(ids.Role("owner"))
	roles := ids.RoleAssignment{ids.Role("owner"): ids.Identity("alice")}

	ctxAlice := context.WithValue(context.Background(), testIdentityKey{}, ids.Identity("alice"))
	require.NoError(t, auth(ctxAlice, ids.GenerateTestSessionId(), roles))

	ctxMallory := context.WithValue(context.Background(), testIdentityKey{}, ids.Identity("mallory"))
	require.Error(t, auth(ctxMallory, ids.GenerateTestSessionId(), roles))
}

type testIdentityKey struct{}
