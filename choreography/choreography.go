// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package choreography implements the Choreography Server of spec §4.6
// and §6: the single entrypoint choreographers use to launch a
// computation, retrieve its results once complete, or abort it early.
// One session id may be launched successfully at most once; a second
// launch for the same id is rejected rather than silently replacing the
// first (spec invariant).
package choreography

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/luxfi/moose/computation"
	"github.com/luxfi/moose/execution"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/internal/moonlog"
	"github.com/luxfi/moose/networking"
	"github.com/luxfi/moose/storage"
	"github.com/luxfi/moose/value"
)

// resultCell is the single-producer/single-consumer handoff point
// between the detached goroutine gathering a session's outputs and any
// number of RetrieveResults calls polling for them.
type resultCell struct {
	mu       sync.Mutex
	done     bool
	outputs  map[string]value.Value
	err      error
	launched time.Time
	elapsed  time.Duration
}

// Server is the choreography server. It owns no cryptographic state of
// its own: it only tracks session lifecycle and fans actual execution
// out to execution.Session.
type Server struct {
	log      moonlog.Logger
	self     ids.Identity
	net      networking.Networking
	netStrat networking.Strategy
	store    storage.Storage

	authorize             Authorize
	expectedChoreographer ids.Identity
	metrics               *metrics

	mu       sync.Mutex
	sessions map[string]*resultCell
}

// New constructs a choreography server. netStrat, if non-nil, is
// consulted per-session (networking.Strategy.ForSession) so that
// concurrent sessions do not share rendezvous channels; otherwise net is
// used directly for every session. reg, if non-nil, is where the
// server's launch/abort counters and elapsed-time histogram register
// themselves; passing nil keeps the collectors live but unregistered,
// which is what tests want.
func New(log moonlog.Logger, self ids.Identity, net networking.Networking, netStrat networking.Strategy, store storage.Storage, reg prometheus.Registerer) *Server {
	if log == nil {
		log = moonlog.NoOp()
	}
	s := &Server{
		log:      log,
		self:     self,
		net:      net,
		netStrat: netStrat,
		store:    store,
		metrics:  newMetrics(reg),
		sessions: make(map[string]*resultCell),
	}
	s.authorize = s.defaultAuthorize
	return s
}

// LaunchComputation begins executing comp under sessionID for the given
// role assignment and arguments. It returns immediately; the computation
// runs in a detached goroutine and its outputs are collected for a later
// RetrieveResults call. Launching the same session id twice is a protocol
// violation and aborts — at most one successful launch per session id.
func (s *Server) LaunchComputation(ctx context.Context, sessionID ids.SessionId, comp computation.Computation, roles ids.RoleAssignment, arguments map[string]value.Value) error {
	if err := s.authorize(ctx, sessionID, roles); err != nil {
		return err
	}

	key := sessionID.String()

	s.mu.Lock()
	if _, exists := s.sessions[key]; exists {
		s.mu.Unlock()
		return status.Errorf(codes.Aborted, "session id exists already: %s", key)
	}
	cell := &resultCell{launched: time.Now()}
	s.sessions[key] = cell
	s.mu.Unlock()
	s.metrics.launches.Inc()

	net := s.net
	if s.netStrat != nil {
		net = s.netStrat.ForSession(sessionID)
	}

	sess := &execution.Session{
		SessionID: sessionID,
		Self:      s.self,
		Roles:     roles,
		Net:       net,
		Store:     s.store,
		Log:       s.log,
	}

	go func() {
		outputs, err := sess.Execute(ctx, comp, arguments)
		cell.mu.Lock()
		cell.outputs = outputs
		cell.err = err
		cell.done = true
		cell.elapsed = time.Since(cell.launched)
		cell.mu.Unlock()
		s.metrics.elapsed.Observe(cell.elapsed.Seconds())
		if err != nil {
			s.log.Warn("computation failed", "session", key, "error", err)
		} else {
			s.log.Info("computation finished", "session", key, "elapsed", cell.elapsed.String())
		}
	}()

	return nil
}

// RetrieveResults reports whether sessionID's computation has finished
// and, if so, its outputs. A session that was never launched is
// NotFound; a launched-but-not-yet-finished session reports ready=false
// with no error.
func (s *Server) RetrieveResults(ctx context.Context, sessionID ids.SessionId) (outputs map[string]value.Value, ready bool, err error) {
	key := sessionID.String()

	s.mu.Lock()
	cell, exists := s.sessions[key]
	s.mu.Unlock()
	if !exists {
		return nil, false, status.Errorf(codes.NotFound, "session %s not found", key)
	}

	cell.mu.Lock()
	defer cell.mu.Unlock()
	if !cell.done {
		return nil, false, nil
	}
	return cell.outputs, true, cell.err
}

// AbortComputation removes a launched session from tracking. Whether an
// in-flight goroutine is interrupted depends on ctx passed to
// LaunchComputation honoring cancellation; abort itself is "stop
// waiting on it" — it forgets the session so a later RetrieveResults
// reports NotFound — without forcibly cancelling kernels already
// dispatched.
func (s *Server) AbortComputation(ctx context.Context, sessionID ids.SessionId) error {
	key := sessionID.String()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[key]; !exists {
		return status.Errorf(codes.NotFound, "session %s not found", key)
	}
	delete(s.sessions, key)
	s.metrics.aborts.Inc()
	return nil
}
