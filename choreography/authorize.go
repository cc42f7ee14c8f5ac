// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choreography

import (
	"context"
	"crypto/x509"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/luxfi/moose/ids"
)

// PeerIdentity extracts the calling choreographer's identity from the
// gRPC request's peer TLS certificate, matching spec §4.6's
// "choreographer identity ... extracted from transport-level
// credentials." It is kept as a standalone function (rather than
// inlined into LaunchComputation) so tests can inject a context with a
// synthetic peer, bypassing a real TLS handshake.
func PeerIdentity(ctx context.Context) (ids.Identity, bool) {
	p, ok := peer.FromContext(ctx)
	if !ok || p.AuthInfo == nil {
		return "", false
	}
	tlsInfo, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok || len(tlsInfo.State.PeerCertificates) == 0 {
		return "", false
	}
	cert := tlsInfo.State.PeerCertificates[0]
	return identityFromCertificate(cert), true
}

func identityFromCertificate(cert *x509.Certificate) ids.Identity {
	return ids.Identity(cert.Subject.CommonName)
}

// Authorize is consulted by LaunchComputation before accepting a launch.
// A Server always has one installed: New wires defaultAuthorize, and
// WithAuthorize replaces it with a caller-supplied policy.
type Authorize func(ctx context.Context, sessionID ids.SessionId, roles ids.RoleAssignment) error

// WithAuthorize replaces the server's authorization check.
func (s *Server) WithAuthorize(auth Authorize) *Server {
	s.authorize = auth
	return s
}

// WithExpectedChoreographer configures the single identity allowed to
// launch, retrieve, or abort sessions on this server, enforced by
// defaultAuthorize. Leaving it unset keeps the server unconfigured.
func (s *Server) WithExpectedChoreographer(id ids.Identity) *Server {
	s.expectedChoreographer = id
	return s
}

// defaultAuthorize is the policy New installs: symmetric around whether
// an expected choreographer identity was configured. If one was, the
// caller's peer identity must match it exactly — a mismatched or absent
// identity is rejected. If none was configured, a caller that presents
// an identity anyway is rejected too, since there is nothing to check
// it against.
func (s *Server) defaultAuthorize(ctx context.Context, _ ids.SessionId, _ ids.RoleAssignment) error {
	caller, hasCaller := PeerIdentity(ctx)
	if s.expectedChoreographer == "" {
		if hasCaller {
			return unauthorized("no choreographer identity configured, but caller presented one")
		}
		return nil
	}
	if !hasCaller || caller != s.expectedChoreographer {
		return unauthorized("caller is not the configured choreographer")
	}
	return nil
}

func unauthorized(reason string) error {
	return status.Error(codes.Aborted, reason)
}
