// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package moosepb holds the choreography server's wire messages. These
// are hand-maintained Go structs rather than protoc-generated code: each
// field maps directly onto what wire.Encode/Decode already knows how to
// serialize, so a future .proto/generated-stub swap only touches this
// package's bodies, not its callers in choreography or cmd/moosed.
package moosepb

import "github.com/luxfi/moose/ids"

// LaunchComputationRequest carries everything a choreographer needs to
// start a computation: its session id, the finalized computation
// (wire.EncodeComputation'd), the role assignment, and launch arguments.
type LaunchComputationRequest struct {
	SessionID         ids.SessionId
	ComputationBytes  []byte
	RoleAssignment    ids.RoleAssignment
	ArgumentsBytes    []byte
}

type LaunchComputationResponse struct {
	Accepted bool
}

type RetrieveResultsRequest struct {
	SessionID ids.SessionId
}

// RetrieveResultsResponse reports Ready=false while the computation is
// still running; OutputsBytes is only meaningful once Ready is true.
type RetrieveResultsResponse struct {
	Ready        bool
	OutputsBytes []byte
}

type AbortComputationRequest struct {
	SessionID ids.SessionId
}

type AbortComputationResponse struct {
	Aborted bool
}
