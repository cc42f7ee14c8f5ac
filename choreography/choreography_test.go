// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choreography

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/luxfi/moose/computation"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/networking"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/storage"
	"github.com/luxfi/moose/value"
)

func host() placement.Placement { return placement.Host(ids.Role("alice")) }

func newTestServer() *Server {
	return New(nil, ids.Identity("alice"), networking.NewInMemory(), nil, storage.NewInMemory(), nil)
}

func simpleComputation(t *testing.T) computation.Computation {
	comp, err := computation.New([]computation.Operation{
		{Name: "a", Kind: computation.OpInput, Placement: host(), Attrs: computation.Attributes{ArgName: "a"}},
		{Name: "out", Kind: computation.OpOutput, Inputs: []string{"a"}, Placement: host()},
	})
	require.NoError(t, err)
	return comp
}

// TestRetrieveUnknownSessionIsNotFound mirrors scenario E6.
func TestRetrieveUnknownSessionIsNotFound(t *testing.T) {
	s := newTestServer()
	_, _, err := s.RetrieveResults(context.Background(), ids.GenerateTestSessionId())
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestLaunchTwiceForSameSessionFails(t *testing.T) {
	s := newTestServer()
	sid := ids.GenerateTestSessionId()
	comp := simpleComputation(t)
	args := map[string]value.Value{"a": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{1}}}

	require.NoError(t, s.LaunchComputation(context.Background(), sid, comp, nil, args))
	err := s.LaunchComputation(context.Background(), sid, comp, nil, args)
	require.Error(t, err)
	require.Equal(t, codes.Aborted, status.Code(err))
	require.Contains(t, err.Error(), "session id exists already")
}

func TestLaunchThenRetrieveEventuallyReady(t *testing.T) {
	s := newTestServer()
	sid := ids.GenerateTestSessionId()
	comp := simpleComputation(t)
	args := map[string]value.Value{"a": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{42}}}

	require.NoError(t, s.LaunchComputation(context.Background(), sid, comp, nil, args))

	require.Eventually(t, func() bool {
		outputs, ready, err := s.RetrieveResults(context.Background(), sid)
		if err != nil || !ready {
			return false
		}
		out := outputs["out"].(value.HostRing64Tensor)
		return out.Data[0] == 42
	}, time.Second, 5*time.Millisecond)
}

func TestAuthorizeRejectsDisallowedLaunch(t *testing.T) {
	s := newTestServer()
	s.WithAuthorize(func(ctx context.Context, sessionID ids.SessionId, roles ids.RoleAssignment) error {
		return unauthorized("caller is not the owner of this session")
	})
	sid := ids.GenerateTestSessionId()
	comp := simpleComputation(t)
	args := map[string]value.Value{"a": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{1}}}

	err := s.LaunchComputation(context.Background(), sid, comp, nil, args)
	require.Error(t, err)
	require.Equal(t, codes.Aborted, status.Code(err))

	_, _, retrieveErr := s.RetrieveResults(context.Background(), sid)
	require.Equal(t, codes.NotFound, status.Code(retrieveErr))
}

// TestDefaultAuthorizeUnconfiguredRejectsPresentedIdentity exercises the
// unconfigured half of defaultAuthorize's symmetric policy: with no
// expected choreographer set, a caller presenting any identity is
// rejected, not silently accepted.
func TestDefaultAuthorizeUnconfiguredRejectsPresentedIdentity(t *testing.T) {
	s := newTestServer()
	ctx := peer.NewContext(context.Background(), &peer.Peer{
		AuthInfo: credentials.TLSInfo{State: tls.ConnectionState{PeerCertificates: []*x509.Certificate{
			{Subject: pkix.Name{CommonName: "mallory"}},
		}}},
	})
	sid := ids.GenerateTestSessionId()
	comp := simpleComputation(t)
	args := map[string]value.Value{"a": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{1}}}

	err := s.LaunchComputation(ctx, sid, comp, nil, args)
	require.Error(t, err)
	require.Equal(t, codes.Aborted, status.Code(err))
}

// TestDefaultAuthorizeConfiguredRequiresMatchingIdentity exercises the
// configured half: only the expected choreographer's identity passes,
// a mismatched one is rejected, and a request with no identity at all
// (no TLS peer) is rejected too.
func TestDefaultAuthorizeConfiguredRequiresMatchingIdentity(t *testing.T) {
	s := newTestServer().WithExpectedChoreographer(ids.Identity("alice-choreographer"))
	comp := simpleComputation(t)
	args := map[string]value.Value{"a": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{1}}}

	noIdentity := s.LaunchComputation(context.Background(), ids.GenerateTestSessionId(), comp, nil, args)
	require.Error(t, noIdentity)
	require.Equal(t, codes.Aborted, status.Code(noIdentity))

	mismatchCtx := peer.NewContext(context.Background(), &peer.Peer{
		AuthInfo: credentials.TLSInfo{State: tls.ConnectionState{PeerCertificates: []*x509.Certificate{
			{Subject: pkix.Name{CommonName: "mallory"}},
		}}},
	})
	mismatch := s.LaunchComputation(mismatchCtx, ids.GenerateTestSessionId(), comp, nil, args)
	require.Error(t, mismatch)
	require.Equal(t, codes.Aborted, status.Code(mismatch))

	matchCtx := peer.NewContext(context.Background(), &peer.Peer{
		AuthInfo: credentials.TLSInfo{State: tls.ConnectionState{PeerCertificates: []*x509.Certificate{
			{Subject: pkix.Name{CommonName: "alice-choreographer"}},
		}}},
	})
	require.NoError(t, s.LaunchComputation(matchCtx, ids.GenerateTestSessionId(), comp, nil, args))
}

func TestAuthorizeAllowsPermittedLaunch(t *testing.T) {
	s := newTestServer()
	var calledWith ids.SessionId
	s.WithAuthorize(func(ctx context.Context, sessionID ids.SessionId, roles ids.RoleAssignment) error {
		calledWith = sessionID
		return nil
	})
	sid := ids.GenerateTestSessionId()
	comp := simpleComputation(t)
	args := map[string]value.Value{"a": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{1}}}

	require.NoError(t, s.LaunchComputation(context.Background(), sid, comp, nil, args))
	require.Equal(t, sid.String(), calledWith.String())
}

func TestAbortForgetsSession(t *testing.T) {
	s := newTestServer()
	sid := ids.GenerateTestSessionId()
	comp := simpleComputation(t)
	args := map[string]value.Value{"a": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{1}}}

	require.NoError(t, s.LaunchComputation(context.Background(), sid, comp, nil, args))
	require.NoError(t, s.AbortComputation(context.Background(), sid))

	_, _, err := s.RetrieveResults(context.Background(), sid)
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}
