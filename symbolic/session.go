// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package symbolic implements the Symbolic Session of spec §4.5: instead
// of computing, it records each dispatched operation as a new node of a
// lowered Computation and caches replicated setup generation per
// placement.
package symbolic

import (
	"sync"

	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/internal/moonlog"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/symbolicvalue"
)

// Session implements the symbolic compilation side of the execution
// core's Session contract. Its mutable state — the emitted operation
// list and the replicated-setup cache — is guarded by a single
// read/write lock, per spec §4.5/§9 ("never protect these with a global
// mutex" other than this one dedicated lock).
type Session struct {
	log moonlog.Logger

	mu    sync.RWMutex
	ops   []computation.Operation
	setup map[string]symbolicvalue.Handle // keyed by placement.String()
}

// NewSession returns a fresh, empty symbolic session.
func NewSession(log moonlog.Logger) *Session {
	if log == nil {
		log = moonlog.NoOp()
	}
	return &Session{
		log:   log,
		setup: make(map[string]symbolicvalue.Handle),
	}
}

// addOperation appends a new Operation under the write lock and returns
// a symbolic handle to its output, named op_<n> where n is the number
// of operations emitted so far (spec §4.5, §5 ordering guarantee).
func (s *Session) addOperation(kind computation.OperatorKind, inputs []string, plc placement.Placement, attrs computation.Attributes) symbolicvalue.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := opName(len(s.ops))
	s.ops = append(s.ops, computation.Operation{
		Name:      name,
		Kind:      kind,
		Inputs:    inputs,
		Placement: plc,
		Attrs:     attrs,
	})
	return symbolicvalue.Handle{OpName: name, Plc: plc}
}

func opName(n int) string {
	return "op_" + itoa(n)
}

// itoa avoids pulling in strconv for a single call site in the hot
// add_operation path; kept trivial on purpose.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Setup returns the cached replicated-setup handle for plc, generating
// one if this is the first request for that placement. It uses the
// double-checked pattern required by spec §4.5: a read-lock lookup
// first; on a miss, the setup is generated with no lock held and the
// write lock is taken only to commit it via get-or-insert — so two concurrent callers for
// the same placement may both generate a setup, but only one is
// retained and every caller observes the same retained handle.
func (s *Session) Setup(plc placement.Placement) (symbolicvalue.Handle, error) {
	if plc.Kind() != placement.KindReplicated {
		return symbolicvalue.Handle{}, moerrors.InvalidArgument("setup requested for non-replicated placement %s", plc)
	}
	key := plc.String()

	s.mu.RLock()
	if h, ok := s.setup[key]; ok {
		s.mu.RUnlock()
		return h, nil
	}
	s.mu.RUnlock()

	// Miss: generate a fresh setup without holding any lock. This may
	// itself call addOperation, which takes the write lock internally,
	// so it must not be called while we hold one.
	candidate := s.generateSetup(plc)

	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.setup[key]; ok {
		// Another goroutine won the race; the candidate we built is
		// discarded. It was already appended to s.ops by addOperation,
		// so a later pruning pass would need to remove it — acceptable
		// per spec §4.5 ("the loser's setup is discarded and may be
		// pruned by a later pass").
		return h, nil
	}
	s.setup[key] = candidate
	return candidate, nil
}

func (s *Session) generateSetup(plc placement.Placement) symbolicvalue.Handle {
	return s.addOperation(computation.OpReplicatedSetup, nil, plc, computation.Attributes{})
}

// replicatedSetupOperators is the set of operators whose symbolic
// lowering requires replicated setup material to already be present for
// their placement, per spec §4.5's description of setup caching being
// driven by replicated-placement kernels (share/reveal/arithmetic).
var replicatedSetupOperators = map[computation.OperatorKind]bool{
	computation.OpShare:  true,
	computation.OpReveal: true,
	computation.OpAdd:    true,
	computation.OpSub:    true,
	computation.OpMul:    true,
	computation.OpMux:    true,
}

// Execute implements the "kernel contract in symbolic mode" (spec
// §4.5): it registers op as a new lowered operation and returns a
// symbolic handle to its result. Send and Receive are rejected outright
// because lowering is local to one host.
func (s *Session) Execute(op computation.Operation, operands []symbolicvalue.SymbolicValue) (symbolicvalue.SymbolicValue, error) {
	switch op.Kind {
	case computation.OpSend:
		return nil, moerrors.Compilation("send not supported on symbolic sessions")
	case computation.OpReceive:
		return nil, moerrors.Compilation("receive not supported on symbolic sessions")
	}

	inputNames := make([]string, len(operands))
	for i, operand := range operands {
		name, err := s.nameOf(operand)
		if err != nil {
			return nil, err
		}
		inputNames[i] = name
	}

	if op.Placement.Kind() == placement.KindReplicated && replicatedSetupOperators[op.Kind] {
		if _, err := s.Setup(op.Placement); err != nil {
			return nil, err
		}
	}

	h := s.addOperation(op.Kind, inputNames, op.Placement, op.Attrs)
	return symbolicvalue.Symbolic{H: h}, nil
}

// nameOf recovers the lowered operation name an operand handle refers
// to. Only Symbolic operands are valid operation operands in the
// symbolic session's executor — Concrete operands only arise from
// kernels that decompose at the design level, which this minimum-viable
// implementation does not use for any catalogue operator.
func (s *Session) nameOf(operand symbolicvalue.SymbolicValue) (string, error) {
	sym, ok := operand.(symbolicvalue.Symbolic)
	if !ok {
		return "", moerrors.Compilation("operand is not a symbolic handle: %T", operand)
	}
	return sym.H.OpName, nil
}

// Finalize takes exclusive ownership of the session's emitted operations
// and returns them as a new Computation. It fails if anything else still
// holds a reference to the session's lock (spec §4.5: "Failure to take
// exclusive ownership ... is a compilation error").
func (s *Session) Finalize() (computation.Computation, error) {
	if !s.mu.TryLock() {
		return computation.Computation{}, moerrors.Compilation("cannot finalize: session state is still shared")
	}
	defer s.mu.Unlock()

	ops := s.ops
	s.ops = nil
	return computation.New(ops)
}

// Run executes comp against a fresh argument-free environment (the
// symbolic session has no concrete launch arguments — Input operators
// simply become symbolic handles) and returns the lowered Computation
// (spec §4.5 "Executor").
func Run(log moonlog.Logger, comp computation.Computation) (computation.Computation, error) {
	sess := NewSession(log)
	env := make(map[string]symbolicvalue.SymbolicValue, len(comp.Operations))

	for _, op := range comp.Operations {
		operands := make([]symbolicvalue.SymbolicValue, len(op.Inputs))
		for i, name := range op.Inputs {
			v, ok := env[name]
			if !ok {
				return computation.Computation{}, moerrors.InvalidArgument("operation %q references unknown input %q", op.Name, name)
			}
			operands[i] = v
		}
		result, err := sess.Execute(op, operands)
		if err != nil {
			return computation.Computation{}, moerrors.WithOperation(err, op.Name)
		}
		env[op.Name] = result
	}

	return sess.Finalize()
}
