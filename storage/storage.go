// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage defines the external Storage collaborator (spec
// §4.7). The real persistent blob store is explicitly out of scope
// (spec §1); only the Load/Save contract lives here.
package storage

import (
	"context"

	"github.com/luxfi/moose/value"
)

// Storage is the persistence backend the Load/Save kernels use.
type Storage interface {
	Load(ctx context.Context, key string, query string, typeHint value.Kind) (value.Value, error)
	Save(ctx context.Context, key string, v value.Value) error
}

// Strategy resolves the Storage instance a session uses. Most
// deployments share one Storage across sessions, unlike Networking
// which is per-session (spec §4.7).
type Strategy interface {
	Storage() Storage
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func() Storage

func (f StrategyFunc) Storage() Storage { return f() }
