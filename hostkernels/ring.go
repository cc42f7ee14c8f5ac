// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hostkernels

import (
	"github.com/luxfi/moose/ring128"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/value"
)

func ring64Elementwise(a, b value.HostRing64Tensor, op string, fn func(x, y uint64) uint64) (value.Value, error) {
	if len(a.Data) != len(b.Data) {
		return nil, moerrors.Kernel("%s: shape mismatch (%d vs %d elements)", op, len(a.Data), len(b.Data))
	}
	out := make([]uint64, len(a.Data))
	for i := range out {
		out[i] = fn(a.Data[i], b.Data[i])
	}
	return value.HostRing64Tensor{Plc: a.Plc, Shape: a.Shape, Data: out}, nil
}

func ring128Elementwise(a, b value.HostRing128Tensor, op string, fn func(x, y ring128.U128) ring128.U128) (value.Value, error) {
	if len(a.Data) != len(b.Data) {
		return nil, moerrors.Kernel("%s: shape mismatch (%d vs %d elements)", op, len(a.Data), len(b.Data))
	}
	out := make([]ring128.U128, len(a.Data))
	for i := range out {
		out[i] = fn(a.Data[i], b.Data[i])
	}
	return value.HostRing128Tensor{Plc: a.Plc, Shape: a.Shape, Data: out}, nil
}

func ring64Unary(a value.HostRing64Tensor, fn func(x uint64) uint64) value.Value {
	out := make([]uint64, len(a.Data))
	for i, x := range a.Data {
		out[i] = fn(x)
	}
	return value.HostRing64Tensor{Plc: a.Plc, Shape: a.Shape, Data: out}
}

func ring128Unary(a value.HostRing128Tensor, fn func(x ring128.U128) ring128.U128) value.Value {
	out := make([]ring128.U128, len(a.Data))
	for i, x := range a.Data {
		out[i] = fn(x)
	}
	return value.HostRing128Tensor{Plc: a.Plc, Shape: a.Shape, Data: out}
}
