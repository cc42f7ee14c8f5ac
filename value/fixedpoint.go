// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package value

import "github.com/luxfi/moose/placement"

// FixedpointTensor is an integer ring tensor interpreted as
// value = integer * base^(-exp) (spec GLOSSARY). IntegralPrecision and
// FractionalPrecision bound the representable magnitude and record the
// scaling exponent used to produce the underlying ring tensor.
type FixedpointTensor struct {
	Plc                 placement.Placement
	IntegralPrecision   int
	FractionalPrecision int
	ScalingBase         uint64
	Inner               Value // HostRing64Tensor or HostRing128Tensor
}

func (FixedpointTensor) Kind() Kind                        { return KindFixedpoint }
func (t FixedpointTensor) Placement() placement.Placement { return t.Plc }
