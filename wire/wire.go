// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wire provides the binary encoding the choreography server's
// gRPC surface uses to move SessionId, Computation, and Value payloads
// between processes. It is a thin gob-based codec: every concrete Value
// implementation is registered up front so gob's interface encoding can
// round-trip the Value tagged union without a hand-rolled tag byte per
// type. SymbolicValue types are not registered. Maps (value maps and
// role assignments) are written in Go's map iteration order, so their
// encoded bytes are not deterministic across calls; they decode to
// equal maps.
package wire

import (
	"bytes"
	"encoding/gob"

	"github.com/luxfi/moose/computation"
	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/value"
)

func init() {
	gob.Register(value.Unit{})
	gob.Register(value.HostShape{})
	gob.Register(value.HostString{})
	gob.Register(value.PrfKey{})
	gob.Register(value.Seed{})
	gob.Register(value.HostFloatTensor{})
	gob.Register(value.HostBitTensor{})
	gob.Register(value.HostRing64Tensor{})
	gob.Register(value.HostRing128Tensor{})
	gob.Register(value.FixedpointTensor{})
	gob.Register(value.ReplicatedRing64Tensor{})
	gob.Register(value.ReplicatedRing128Tensor{})
	gob.Register(value.MirroredRing64Tensor{})
	gob.Register(value.MirroredRing128Tensor{})
	gob.Register(value.MirroredFloat64Tensor{})
}

// EncodeValue serializes a single Value.
func EncodeValue(v value.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeValue deserializes a single Value previously produced by
// EncodeValue.
func DecodeValue(data []byte) (value.Value, error) {
	var v value.Value
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeValues serializes a name-to-Value map, the shape launch
// arguments and computation outputs take on the wire.
func EncodeValues(values map[string]value.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(values); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeValues(data []byte) (map[string]value.Value, error) {
	var values map[string]value.Value
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&values); err != nil {
		return nil, err
	}
	return values, nil
}

// EncodeComputation serializes a finalized Computation for transport to
// the parties executing it.
func EncodeComputation(comp computation.Computation) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(comp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeComputation(data []byte) (computation.Computation, error) {
	var comp computation.Computation
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&comp); err != nil {
		return computation.Computation{}, err
	}
	return comp, nil
}

// EncodeRoleAssignment serializes a role->identity mapping.
func EncodeRoleAssignment(roles ids.RoleAssignment) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(roles); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeRoleAssignment(data []byte) (ids.RoleAssignment, error) {
	var roles ids.RoleAssignment
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&roles); err != nil {
		return nil, err
	}
	return roles, nil
}
