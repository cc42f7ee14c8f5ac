// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kernel implements the Kernel Dispatcher of spec §4.3: given an
// operator, a placement, and operand value kinds, it selects and returns
// a typed kernel closure of the appropriate arity. The dispatch table is
// the single place that knows about every operator (spec §9), built
// once from the operator catalogue in computation.OperatorKind.
package kernel

import (
	"context"

	"github.com/luxfi/moose/internal/moonlog"
	"github.com/luxfi/moose/networking"
	"github.com/luxfi/moose/storage"
	"github.com/luxfi/moose/value"
)

// Context is everything a kernel needs from its caller besides the
// operation's own operands: launch arguments (for InputOp), networking
// (for Send/Receive) and storage (for Load/Save), plus the host's own
// identity for addressing peers.
type Context struct {
	Ctx       context.Context
	Log       moonlog.Logger
	Arguments map[string]value.Value
	Net       networking.Networking
	Store     storage.Storage
	Self      string // this host's identity/role, for logging only
}

// Argument looks up an InputOp's argument by name.
func (c *Context) Argument(name string) (value.Value, bool) {
	v, ok := c.Arguments[name]
	return v, ok
}
