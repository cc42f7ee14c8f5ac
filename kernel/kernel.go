// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kernel

import (
	"github.com/luxfi/moose/computation"
	"github.com/luxfi/moose/value"
)

// The five kernel closure arities (spec §4.2, §4.3). A Kernel carries
// exactly one of these, selected by its Arity field; Invoke pops the
// exact operand count its arity declares.
type (
	NullaryFn  func(ctx *Context, op computation.Operation) (value.Value, error)
	UnaryFn    func(ctx *Context, op computation.Operation, a value.Value) (value.Value, error)
	BinaryFn   func(ctx *Context, op computation.Operation, a, b value.Value) (value.Value, error)
	TernaryFn  func(ctx *Context, op computation.Operation, a, b, c value.Value) (value.Value, error)
	VariadicFn func(ctx *Context, op computation.Operation, operands []value.Value) (value.Value, error)
)

// Kernel is a typed closure implementing one (operator, placement,
// operand-kinds) triple.
type Kernel struct {
	Arity    computation.Arity
	Nullary  NullaryFn
	Unary    UnaryFn
	Binary   BinaryFn
	Ternary  TernaryFn
	Variadic VariadicFn
}

// Invoke calls the kernel with exactly the operands its arity expects.
func (k Kernel) Invoke(ctx *Context, op computation.Operation, operands []value.Value) (value.Value, error) {
	switch k.Arity {
	case computation.ArityNullary:
		return k.Nullary(ctx, op)
	case computation.ArityUnary:
		return k.Unary(ctx, op, operands[0])
	case computation.ArityBinary:
		return k.Binary(ctx, op, operands[0], operands[1])
	case computation.ArityTernary:
		return k.Ternary(ctx, op, operands[0], operands[1], operands[2])
	case computation.ArityVariadic:
		return k.Variadic(ctx, op, operands)
	default:
		panic("kernel: invalid arity")
	}
}
