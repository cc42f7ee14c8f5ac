// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networking

import (
	"context"
	"fmt"
	"sync"

	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/value"
)

// channelNetworking is an in-memory stand-in for a real transport,
// shipped alongside the real package the way networking/benchlist and
// networking/router ship a stub.go next to their production code.
// It is not a wire protocol: it is for single-process tests and the CLI
// demo mode, where Send and Receive for the same rendezvous key happen
// inside one process.
type channelNetworking struct {
	mu    sync.Mutex
	cells map[string]chan value.Value
}

// NewInMemory returns a Networking backed by in-process channels, keyed
// by (peer, rendezvousKey). A Receive for a key that hasn't been sent
// yet blocks until a matching Send arrives or ctx is cancelled.
func NewInMemory() Networking {
	return &channelNetworking{cells: make(map[string]chan value.Value)}
}

func (c *channelNetworking) cell(peer ids.Identity, key []byte) chan value.Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := fmt.Sprintf("%s/%x", peer, key)
	ch, ok := c.cells[k]
	if !ok {
		ch = make(chan value.Value, 1)
		c.cells[k] = ch
	}
	return ch
}

func (c *channelNetworking) Send(ctx context.Context, v value.Value, peer ids.Identity, rendezvousKey []byte) error {
	select {
	case c.cell(peer, rendezvousKey) <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *channelNetworking) Receive(ctx context.Context, peer ids.Identity, rendezvousKey []byte) (value.Value, error) {
	select {
	case v := <-c.cell(peer, rendezvousKey):
		return v, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// InMemoryStrategy returns the same in-memory Networking instance for
// every session, which is sufficient for single-process demos and tests
// where all roles execute in one process.
func InMemoryStrategy() Strategy {
	shared := NewInMemory()
	return StrategyFunc(func(ids.SessionId) Networking { return shared })
}
