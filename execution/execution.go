// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package execution implements the Runtime Session of spec §4.6: given a
// finalized Computation, launch arguments, and a role assignment, it
// walks every operation, dispatches its kernel, and exposes each
// operation's result as an async value so independent branches of the
// graph can run concurrently rather than strictly in listed order.
package execution

import (
	"context"
	"sync"

	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/internal/moonlog"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/networking"
	"github.com/luxfi/moose/storage"
	"github.com/luxfi/moose/value"

	// Registering the concrete kernel sets is a side effect of importing
	// them; execution is the one package that needs every kernel wired,
	// so it blank-imports every implementation package.
	_ "github.com/luxfi/moose/hostkernels"
	_ "github.com/luxfi/moose/replicatedkernels"
	_ "github.com/luxfi/moose/thresholdsetup"
)

// cell holds the outcome of one operation: exactly one of v or err is
// set once done is closed, matching the single-producer/
// many-consumers shape the dependents reading this op's output need.
type cell struct {
	done chan struct{}
	v    value.Value
	err  error
}

func newCell() *cell { return &cell{done: make(chan struct{})} }

func (c *cell) resolve(v value.Value, err error) {
	c.v, c.err = v, err
	close(c.done)
}

func (c *cell) await(ctx context.Context) (value.Value, error) {
	select {
	case <-c.done:
		return c.v, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Session is one runtime execution of a single computation for a single
// session id, as opposed to symbolic.Session's compile-time role.
type Session struct {
	SessionID ids.SessionId
	Self      ids.Identity
	Roles     ids.RoleAssignment
	Net       networking.Networking
	Store     storage.Storage
	Log       moonlog.Logger
}

// Execute runs every operation of comp against arguments, returning the
// values produced by the computation's Output operations keyed by their
// operation name. Operations are launched concurrently; each one blocks
// only on the specific operands it names, so independent subgraphs
// overlap instead of running in listed order.
func (s *Session) Execute(ctx context.Context, comp computation.Computation, arguments map[string]value.Value) (map[string]value.Value, error) {
	log := s.Log
	if log == nil {
		log = moonlog.NoOp()
	}

	cells := make(map[string]*cell, len(comp.Operations))
	for _, op := range comp.Operations {
		cells[op.Name] = newCell()
	}

	var wg sync.WaitGroup
	for _, op := range comp.Operations {
		op := op
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runOne(ctx, op, comp, cells, arguments, log)
		}()
	}
	wg.Wait()

	outputs := make(map[string]value.Value)
	for _, op := range comp.Operations {
		if op.Kind != computation.OpOutput {
			continue
		}
		c := cells[op.Name]
		if c.err != nil {
			return nil, c.err
		}
		outputs[op.Name] = c.v
	}
	return outputs, nil
}

func (s *Session) runOne(ctx context.Context, op computation.Operation, comp computation.Computation, cells map[string]*cell, arguments map[string]value.Value, log moonlog.Logger) {
	c := cells[op.Name]

	operands := make([]value.Value, 0, len(op.Inputs))
	kinds := make([]value.Kind, 0, len(op.Inputs))
	for _, inputName := range op.Inputs {
		dep, ok := cells[inputName]
		if !ok {
			c.resolve(nil, moerrors.InvalidArgument("operation %q references unknown input %q", op.Name, inputName))
			return
		}
		v, err := dep.await(ctx)
		if err != nil {
			c.resolve(nil, err)
			return
		}
		operands = append(operands, v)
		kinds = append(kinds, v.Kind())
	}

	k, err := kernel.Dispatch(op.Kind, op.Placement, kinds)
	if err != nil {
		c.resolve(nil, moerrors.WithOperation(err, op.Name))
		return
	}

	kctx := &kernel.Context{
		Ctx:       ctx,
		Log:       log,
		Arguments: arguments,
		Net:       s.Net,
		Store:     s.Store,
		Self:      string(s.Self),
	}
	v, err := k.Invoke(kctx, op, operands)
	c.resolve(v, moerrors.WithOperation(err, op.Name))
}
