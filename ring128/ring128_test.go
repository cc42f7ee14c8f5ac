// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ring128

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSubRoundTrip(t *testing.T) {
	a := FromInt64(12345)
	b := FromInt64(-67)
	sum := a.Add(b)
	require.Equal(t, a, sum.Sub(b))
}

func TestNegIsAdditiveInverse(t *testing.T) {
	a := FromInt64(-42)
	require.True(t, a.Add(a.Neg()).IsZero())
}

func TestFromInt64SignExtension(t *testing.T) {
	neg := FromInt64(-1)
	require.True(t, neg.IsNegative())
	require.Equal(t, ^uint64(0), neg.Hi)
	require.Equal(t, ^uint64(0), neg.Lo)

	pos := FromInt64(7)
	require.False(t, pos.IsNegative())
	require.Equal(t, uint64(0), pos.Hi)
	require.Equal(t, uint64(7), pos.Lo)
}

func TestMulByOneIsIdentity(t *testing.T) {
	a := FromInt64(998877)
	require.Equal(t, a, a.Mul(One))
}

func TestShlShrRoundTrip(t *testing.T) {
	a := From64(0xABCD)
	shifted := a.Shl(8)
	require.Equal(t, a, shifted.Shr(8))
}
