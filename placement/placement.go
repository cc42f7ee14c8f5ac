// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package placement defines the abstract placements a value or operation
// can live on (spec §3): a single host, a 2-of-3 replicated secret-sharing
// group, or a mirrored group of three hosts holding identical public
// values. Placement equality is structural, the same way ids.ID/NodeID
// comparisons are value-based rather than pointer-based.
package placement

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"strings"

	"github.com/luxfi/moose/ids"
)

// Kind enumerates the placement variants.
type Kind uint8

const (
	// KindHost is a single role executing locally.
	KindHost Kind = iota
	// KindReplicated is a 2-of-3 secret-sharing group of three roles.
	KindReplicated
	// KindMirrored3 is three roles each holding the same public value.
	KindMirrored3
)

func (k Kind) String() string {
	switch k {
	case KindHost:
		return "Host"
	case KindReplicated:
		return "Replicated"
	case KindMirrored3:
		return "Mirrored3"
	default:
		return "Unknown"
	}
}

// Placement is a tagged union over Host, Replicated, and Mirrored3. The
// zero value is not a valid Placement; construct one with Host,
// Replicated, or Mirrored3.
type Placement struct {
	kind  Kind
	host  ids.Role
	roles [3]ids.Role
}

// Host returns a placement owned and executed by a single role.
func Host(role ids.Role) Placement {
	return Placement{kind: KindHost, host: role}
}

// Replicated returns a 2-of-3 secret-sharing placement across three
// distinct roles. It panics if the roles are not pairwise distinct,
// matching the invariant in spec §3 ("the three roles ... are distinct").
func Replicated(roles [3]ids.Role) Placement {
	mustBeDistinct(roles)
	return Placement{kind: KindReplicated, roles: roles}
}

// Mirrored3 returns a placement of three roles each holding the same
// public value. It panics if the roles are not pairwise distinct.
func Mirrored3(roles [3]ids.Role) Placement {
	mustBeDistinct(roles)
	return Placement{kind: KindMirrored3, roles: roles}
}

func mustBeDistinct(roles [3]ids.Role) {
	if roles[0] == roles[1] || roles[1] == roles[2] || roles[0] == roles[2] {
		panic(fmt.Sprintf("placement: roles must be distinct, got %v", roles))
	}
}

// Kind returns the placement variant.
func (p Placement) Kind() Kind { return p.kind }

// HostRole returns the role for a Host placement. It is only meaningful
// when Kind() == KindHost.
func (p Placement) HostRole() ids.Role { return p.host }

// Roles returns the three roles of a Replicated or Mirrored3 placement.
// It is only meaningful when Kind() is KindReplicated or KindMirrored3.
func (p Placement) Roles() [3]ids.Role { return p.roles }

// Owners returns every role with a stake in this placement, in a
// deterministic order, regardless of Kind.
func (p Placement) Owners() []ids.Role {
	switch p.kind {
	case KindHost:
		return []ids.Role{p.host}
	case KindReplicated, KindMirrored3:
		return []ids.Role{p.roles[0], p.roles[1], p.roles[2]}
	default:
		return nil
	}
}

// Equal reports structural equality: same kind and same roles.
func (p Placement) Equal(other Placement) bool {
	if p.kind != other.kind {
		return false
	}
	switch p.kind {
	case KindHost:
		return p.host == other.host
	case KindReplicated, KindMirrored3:
		return p.roles == other.roles
	default:
		return false
	}
}

// String renders the placement for logs and error messages.
func (p Placement) String() string {
	switch p.kind {
	case KindHost:
		return fmt.Sprintf("Host(%s)", p.host)
	case KindReplicated:
		return fmt.Sprintf("Replicated(%s)", joinRoles(p.roles))
	case KindMirrored3:
		return fmt.Sprintf("Mirrored3(%s)", joinRoles(p.roles))
	default:
		return "Placement(invalid)"
	}
}

// gobPlacement mirrors Placement's unexported fields so gob (which only
// sees exported fields) can round-trip a Placement across the wire
// package's codec.
type gobPlacement struct {
	Kind  Kind
	Host  ids.Role
	Roles [3]ids.Role
}

func (p Placement) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(gobPlacement{Kind: p.kind, Host: p.host, Roles: p.roles})
	return buf.Bytes(), err
}

func (p *Placement) GobDecode(data []byte) error {
	var g gobPlacement
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return err
	}
	p.kind, p.host, p.roles = g.Kind, g.Host, g.Roles
	return nil
}

func joinRoles(roles [3]ids.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

// ConversionKind describes what, if anything, must happen to re-home a
// value from one placement to another (spec §4.1).
type ConversionKind uint8

const (
	// ConversionNoop means no operator is required: the value's
	// placement annotation can simply be rewritten.
	ConversionNoop ConversionKind = iota
	// ConversionMirror publishes a Host value to a Mirrored3 group.
	ConversionMirror
	// ConversionDemirror collapses a Mirrored3 value back onto one Host.
	ConversionDemirror
	// ConversionShare secret-shares a Host or Mirrored3 value into a
	// Replicated group.
	ConversionShare
	// ConversionReveal opens a Replicated value onto a Host or
	// Mirrored3 group.
	ConversionReveal
	// ConversionRepToAdt converts a 2-of-3 replicated sharing to an
	// additive (2-party) sharing.
	ConversionRepToAdt
	// ConversionAdtToRep converts an additive sharing back to 2-of-3
	// replicated.
	ConversionAdtToRep
	// ConversionUnsupported marks a (src, dst) pair the catalogue has no
	// conversion operator for.
	ConversionUnsupported
)

// ConversionFor reports which conversion, if any, is needed to move a
// value from src to dst. Equal placements never require conversion.
func ConversionFor(src, dst Placement) ConversionKind {
	if src.Equal(dst) {
		return ConversionNoop
	}
	switch {
	case src.kind == KindHost && dst.kind == KindMirrored3:
		return ConversionMirror
	case src.kind == KindMirrored3 && dst.kind == KindHost:
		return ConversionDemirror
	case (src.kind == KindHost || src.kind == KindMirrored3) && dst.kind == KindReplicated:
		return ConversionShare
	case src.kind == KindReplicated && (dst.kind == KindHost || dst.kind == KindMirrored3):
		return ConversionReveal
	case src.kind == KindHost && dst.kind == KindHost:
		// Different hosts: handled by the operator's own Send/Receive
		// machinery, not a placement conversion.
		return ConversionUnsupported
	default:
		return ConversionUnsupported
	}
}
