// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ids defines the identifiers used throughout the execution core:
// the opaque SessionId of a running computation, and the Role/Identity
// pair used to resolve logical participant names to network hosts at
// launch time.
package ids

import (
	"fmt"

	luxids "github.com/luxfi/ids"
)

// SessionId is the opaque identifier of a computation instance on a host.
// Equality is the identity of a live or completed computation: two
// sessions with the same SessionId refer to the same launch.
type SessionId struct {
	id luxids.ID
}

// NewSessionId wraps a raw 32-byte identifier as a SessionId.
func NewSessionId(raw [32]byte) SessionId {
	return SessionId{id: luxids.ID(raw)}
}

// GenerateTestSessionId returns a fresh SessionId for use in tests.
func GenerateTestSessionId() SessionId {
	return SessionId{id: luxids.GenerateTestID()}
}

// Bytes returns the raw bytes backing the session id.
func (s SessionId) Bytes() []byte {
	b := s.id
	return b[:]
}

// String returns a human-readable form, used only in logs and errors.
func (s SessionId) String() string {
	return s.id.String()
}

// Empty reports whether this is the zero-value SessionId.
func (s SessionId) Empty() bool {
	return s.id == luxids.Empty
}

// GobEncode and GobDecode let SessionId cross the wire codec despite its
// id field being unexported: gob only sees exported struct fields by
// default, so the raw bytes are what's actually carried.
func (s SessionId) GobEncode() ([]byte, error) {
	return append([]byte(nil), s.Bytes()...), nil
}

func (s *SessionId) GobDecode(data []byte) error {
	id, err := SessionIdFromBytes(data)
	if err != nil {
		return err
	}
	*s = id
	return nil
}

// SessionIdFromBytes decodes a SessionId from exactly 32 bytes.
func SessionIdFromBytes(b []byte) (SessionId, error) {
	if len(b) != 32 {
		return SessionId{}, fmt.Errorf("session id must be 32 bytes, got %d", len(b))
	}
	var raw [32]byte
	copy(raw[:], b)
	return NewSessionId(raw), nil
}

// Role is a logical participant name, as it appears inside a Computation's
// placements. It is resolved to a concrete network Identity per launch via
// a RoleAssignment.
type Role string

// Identity is the network-level name of a host, e.g. as extracted from
// transport credentials. The runtime session does not compare its own
// identity against role assignments: it executes every operation of a
// computation, whatever role it is placed on.
type Identity string

// RoleAssignment maps every Role appearing in a Computation to the
// Identity of the host that plays it for one launch.
type RoleAssignment map[Role]Identity

// IdentityFor returns the identity assigned to role, if any.
func (ra RoleAssignment) IdentityFor(role Role) (Identity, bool) {
	id, ok := ra[role]
	return id, ok
}
