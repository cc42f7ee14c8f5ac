// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"sync"

	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/value"
)

// memStorage is an in-memory Storage, following the repo's convention
// of shipping a stub.go alongside the real interface. Query is ignored:
// real backends would use it to select among multiple versions of a
// key.
type memStorage struct {
	mu   sync.RWMutex
	data map[string]value.Value
}

// NewInMemory returns a process-local Storage.
func NewInMemory() Storage {
	return &memStorage{data: make(map[string]value.Value)}
}

func (s *memStorage) Load(_ context.Context, key string, _ string, _ value.Kind) (value.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, moerrors.Kernel("load: key %q not found", key)
	}
	return v, nil
}

func (s *memStorage) Save(_ context.Context, key string, v value.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = v
	return nil
}
