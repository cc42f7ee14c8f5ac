// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ring128 implements fixed-width, unchecked two's-complement
// arithmetic modulo 2^128, backed by a pair of uint64 limbs. None of the
// third-party wide-integer types available to this module (e.g.
// 256-bit-oriented big-integer libraries in the broader ecosystem) model
// exactly 128 bits without ad hoc masking after every operation, so this
// is hand-rolled directly on math/bits the way the standard library's
// own bits.Add64/Mul64 are meant to be composed.
package ring128

import "math/bits"

// U128 is an unsigned 128-bit value, Hi being the most significant
// 64 bits. The zero value is 0.
type U128 struct {
	Hi, Lo uint64
}

// From64 widens a uint64 into a U128.
func From64(x uint64) U128 { return U128{Lo: x} }

// FromBits builds a U128 directly from its two limbs.
func FromBits(hi, lo uint64) U128 { return U128{Hi: hi, Lo: lo} }

// Add returns x+y mod 2^128.
func (x U128) Add(y U128) U128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return U128{Hi: hi, Lo: lo}
}

// Sub returns x-y mod 2^128.
func (x U128) Sub(y U128) U128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return U128{Hi: hi, Lo: lo}
}

// Neg returns -x mod 2^128 (two's complement negation).
func (x U128) Neg() U128 {
	return U128{}.Sub(x)
}

// Mul returns x*y mod 2^128.
func (x U128) Mul(y U128) U128 {
	hi, lo := bits.Mul64(x.Lo, y.Lo)
	hi += x.Hi*y.Lo + x.Lo*y.Hi
	return U128{Hi: hi, Lo: lo}
}

// And returns the bitwise AND of x and y.
func (x U128) And(y U128) U128 { return U128{Hi: x.Hi & y.Hi, Lo: x.Lo & y.Lo} }

// Or returns the bitwise OR of x and y.
func (x U128) Or(y U128) U128 { return U128{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo} }

// Xor returns the bitwise XOR of x and y.
func (x U128) Xor(y U128) U128 { return U128{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo} }

// Not returns the bitwise complement of x.
func (x U128) Not() U128 { return U128{Hi: ^x.Hi, Lo: ^x.Lo} }

// Shl returns x logically shifted left by n bits, n in [0, 128).
func (x U128) Shl(n uint) U128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{Hi: x.Lo << (n - 64)}
	default:
		return U128{
			Hi: (x.Hi << n) | (x.Lo >> (64 - n)),
			Lo: x.Lo << n,
		}
	}
}

// Shr returns x logically shifted right by n bits, n in [0, 128).
func (x U128) Shr(n uint) U128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{Lo: x.Hi >> (n - 64)}
	default:
		return U128{
			Hi: x.Hi >> n,
			Lo: (x.Lo >> n) | (x.Hi << (64 - n)),
		}
	}
}

// Bit returns bit i of x (0 = least significant), i in [0, 128).
func (x U128) Bit(i uint) uint64 {
	if i >= 64 {
		return (x.Hi >> (i - 64)) & 1
	}
	return (x.Lo >> i) & 1
}

// IsNegative reports whether x, interpreted as a signed two's-complement
// 128-bit integer, is negative (its top bit is set).
func (x U128) IsNegative() bool {
	return x.Hi>>63 == 1
}

// IsZero reports whether x is exactly zero.
func (x U128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// Equal reports bitwise equality.
func (x U128) Equal(y U128) bool {
	return x.Hi == y.Hi && x.Lo == y.Lo
}

// One is the U128 value 1.
var One = U128{Lo: 1}

// FromInt64 widens a signed int64 into its two's-complement U128
// representation (sign-extended).
func FromInt64(x int64) U128 {
	if x < 0 {
		return U128{Hi: ^uint64(0), Lo: uint64(x)}
	}
	return U128{Lo: uint64(x)}
}
