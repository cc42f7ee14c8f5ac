// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package thresholdsetup provides the runtime counterpart of the
// symbolic session's cached replicated Setup (spec §4.5): generating the
// correlated randomness (here, a shared PRF key) that a Replicated
// group's Add/Mul/Share/Reveal kernels would draw on for a real
// multiplication-triple or resharing protocol.
//
// The symbolic session only ever emits a replicated_setup operation into
// the lowered Computation — it performs no cryptography itself. This
// package is what gives that operation a runtime kernel: it is
// intentionally a single shared PRF key rather than a full
// distributed-key-generation protocol, since no concrete DKG rounds are
// specified for this runtime (documented as a design simplification).
package thresholdsetup

import (
	"crypto/rand"

	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

func init() {
	kernel.Register(computation.OpReplicatedSetup, placement.KindReplicated, nil,
		kernel.Kernel{Arity: computation.ArityNullary, Nullary: replicatedSetupKernel})
}

func replicatedSetupKernel(_ *kernel.Context, op computation.Operation) (value.Value, error) {
	var key value.PrfKey
	key.Plc = op.Placement
	if _, err := rand.Read(key.Bytes[:]); err != nil {
		return nil, moerrors.Kernel("replicated_setup: %v", err)
	}
	return key, nil
}
