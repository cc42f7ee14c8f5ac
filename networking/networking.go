// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package networking defines the external Networking collaborator (spec
// §4.7): the transport the Send/Receive kernels move values over. Only
// the contract lives here — the real wire format and peer discovery are
// explicitly out of scope (spec §1).
package networking

import (
	"context"

	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/value"
)

// Networking transports values between hosts for one session. Rendezvous
// keys are opaque byte strings the core never interprets (spec §4.7).
type Networking interface {
	Send(ctx context.Context, v value.Value, peer ids.Identity, rendezvousKey []byte) error
	Receive(ctx context.Context, peer ids.Identity, rendezvousKey []byte) (value.Value, error)
}

// Strategy resolves the Networking instance to use for a given session.
type Strategy interface {
	ForSession(sid ids.SessionId) Networking
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(sid ids.SessionId) Networking

func (f StrategyFunc) ForSession(sid ids.SessionId) Networking { return f(sid) }
