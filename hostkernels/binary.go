// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hostkernels

import (
	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/ring128"
	"github.com/luxfi/moose/value"
)

func binaryKernel(fn func(ctx *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error)) kernel.Kernel {
	return kernel.Kernel{Arity: computation.ArityBinary, Binary: fn}
}

func init() {
	kernel.Register(computation.OpAdd, placement.KindHost, []value.Kind{value.KindHostRing64, value.KindHostRing64}, binaryKernel(addRing64Kernel))
	kernel.Register(computation.OpSub, placement.KindHost, []value.Kind{value.KindHostRing64, value.KindHostRing64}, binaryKernel(subRing64Kernel))
	kernel.Register(computation.OpMul, placement.KindHost, []value.Kind{value.KindHostRing64, value.KindHostRing64}, binaryKernel(mulRing64Kernel))
	kernel.Register(computation.OpAnd, placement.KindHost, []value.Kind{value.KindHostRing64, value.KindHostRing64}, binaryKernel(andRing64Kernel))
	kernel.Register(computation.OpOr, placement.KindHost, []value.Kind{value.KindHostRing64, value.KindHostRing64}, binaryKernel(orRing64Kernel))
	kernel.Register(computation.OpXor, placement.KindHost, []value.Kind{value.KindHostRing64, value.KindHostRing64}, binaryKernel(xorRing64Kernel))
	kernel.Register(computation.OpLess, placement.KindHost, []value.Kind{value.KindHostRing64, value.KindHostRing64}, binaryKernel(lessRing64Kernel))
	kernel.Register(computation.OpGreater, placement.KindHost, []value.Kind{value.KindHostRing64, value.KindHostRing64}, binaryKernel(greaterRing64Kernel))
	kernel.Register(computation.OpEqual, placement.KindHost, []value.Kind{value.KindHostRing64, value.KindHostRing64}, binaryKernel(equalRing64Kernel))

	kernel.Register(computation.OpAdd, placement.KindHost, []value.Kind{value.KindHostRing128, value.KindHostRing128}, binaryKernel(addRing128Kernel))
	kernel.Register(computation.OpSub, placement.KindHost, []value.Kind{value.KindHostRing128, value.KindHostRing128}, binaryKernel(subRing128Kernel))
	kernel.Register(computation.OpMul, placement.KindHost, []value.Kind{value.KindHostRing128, value.KindHostRing128}, binaryKernel(mulRing128Kernel))

	kernel.Register(computation.OpLoad, placement.KindHost, nil, binaryKernel(loadKernel))
	kernel.Register(computation.OpSave, placement.KindHost, nil, binaryKernel(saveKernel))
}

func asRing64Pair(op string, a, b value.Value) (value.HostRing64Tensor, value.HostRing64Tensor, error) {
	x, ok := a.(value.HostRing64Tensor)
	if !ok {
		return value.HostRing64Tensor{}, value.HostRing64Tensor{}, moerrors.Kernel("%s: unsupported left operand %T", op, a)
	}
	y, ok := b.(value.HostRing64Tensor)
	if !ok {
		return value.HostRing64Tensor{}, value.HostRing64Tensor{}, moerrors.Kernel("%s: unsupported right operand %T", op, b)
	}
	return x, y, nil
}

func asRing128Pair(op string, a, b value.Value) (value.HostRing128Tensor, value.HostRing128Tensor, error) {
	x, ok := a.(value.HostRing128Tensor)
	if !ok {
		return value.HostRing128Tensor{}, value.HostRing128Tensor{}, moerrors.Kernel("%s: unsupported left operand %T", op, a)
	}
	y, ok := b.(value.HostRing128Tensor)
	if !ok {
		return value.HostRing128Tensor{}, value.HostRing128Tensor{}, moerrors.Kernel("%s: unsupported right operand %T", op, b)
	}
	return x, y, nil
}

func addRing64Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing64Pair("add", a, b)
	if err != nil {
		return nil, err
	}
	return ring64Elementwise(value.HostRing64Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "add", func(p, q uint64) uint64 { return p + q })
}

func subRing64Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing64Pair("sub", a, b)
	if err != nil {
		return nil, err
	}
	return ring64Elementwise(value.HostRing64Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "sub", func(p, q uint64) uint64 { return p - q })
}

func mulRing64Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing64Pair("mul", a, b)
	if err != nil {
		return nil, err
	}
	return ring64Elementwise(value.HostRing64Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "mul", func(p, q uint64) uint64 { return p * q })
}

func andRing64Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing64Pair("and", a, b)
	if err != nil {
		return nil, err
	}
	return ring64Elementwise(value.HostRing64Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "and", func(p, q uint64) uint64 { return p & q })
}

func orRing64Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing64Pair("or", a, b)
	if err != nil {
		return nil, err
	}
	return ring64Elementwise(value.HostRing64Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "or", func(p, q uint64) uint64 { return p | q })
}

func xorRing64Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing64Pair("xor", a, b)
	if err != nil {
		return nil, err
	}
	return ring64Elementwise(value.HostRing64Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "xor", func(p, q uint64) uint64 { return p ^ q })
}

// lessRing64Kernel compares elements as two's-complement signed 64-bit
// integers, consistent with Sign/Msb's sign-bit interpretation.
func lessRing64Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing64Pair("less", a, b)
	if err != nil {
		return nil, err
	}
	return ring64Elementwise(value.HostRing64Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "less", func(p, q uint64) uint64 {
		if int64(p) < int64(q) {
			return 1
		}
		return 0
	})
}

func greaterRing64Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing64Pair("greater", a, b)
	if err != nil {
		return nil, err
	}
	return ring64Elementwise(value.HostRing64Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "greater", func(p, q uint64) uint64 {
		if int64(p) > int64(q) {
			return 1
		}
		return 0
	})
}

func equalRing64Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing64Pair("equal", a, b)
	if err != nil {
		return nil, err
	}
	return ring64Elementwise(value.HostRing64Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "equal", func(p, q uint64) uint64 {
		if p == q {
			return 1
		}
		return 0
	})
}

func addRing128Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing128Pair("add", a, b)
	if err != nil {
		return nil, err
	}
	return ring128Elementwise(value.HostRing128Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "add", func(p, q ring128.U128) ring128.U128 { return p.Add(q) })
}

func subRing128Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing128Pair("sub", a, b)
	if err != nil {
		return nil, err
	}
	return ring128Elementwise(value.HostRing128Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "sub", func(p, q ring128.U128) ring128.U128 { return p.Sub(q) })
}

func mulRing128Kernel(_ *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	x, y, err := asRing128Pair("mul", a, b)
	if err != nil {
		return nil, err
	}
	return ring128Elementwise(value.HostRing128Tensor{Plc: op.Placement, Shape: x.Shape, Data: x.Data}, y, "mul", func(p, q ring128.U128) ring128.U128 { return p.Mul(q) })
}

func loadKernel(ctx *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	keyVal, ok := a.(value.HostString)
	if !ok {
		return nil, moerrors.Kernel("load: key operand must be a string, got %T", a)
	}
	query := ""
	if qv, ok := b.(value.HostString); ok {
		query = qv.Value
	}
	if ctx.Store == nil {
		return nil, moerrors.Kernel("load: no storage configured")
	}
	v, err := ctx.Store.Load(ctx.Ctx, keyVal.Value, query, value.KindHostRing64)
	if err != nil {
		return nil, err
	}
	return value.WithPlacement(v, op.Placement), nil
}

func saveKernel(ctx *kernel.Context, op computation.Operation, a, b value.Value) (value.Value, error) {
	keyVal, ok := a.(value.HostString)
	if !ok {
		return nil, moerrors.Kernel("save: key operand must be a string, got %T", a)
	}
	if ctx.Store == nil {
		return nil, moerrors.Kernel("save: no storage configured")
	}
	if err := ctx.Store.Save(ctx.Ctx, keyVal.Value, b); err != nil {
		return nil, err
	}
	return value.Unit{Plc: op.Placement}, nil
}
