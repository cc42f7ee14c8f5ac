// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hostkernels

import (
	"math"

	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/kernel"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

func init() {
	kernel.Register(computation.OpSigmoid, placement.KindHost, []value.Kind{value.KindHostFloat64}, unaryKernel(sigmoidKernel))
	kernel.Register(computation.OpRelu, placement.KindHost, []value.Kind{value.KindHostFloat64}, unaryKernel(reluKernel))
	kernel.Register(computation.OpSoftmax, placement.KindHost, []value.Kind{value.KindHostFloat64}, unaryKernel(softmaxKernel))
}

// These float kernels only exist at the Host placement, where the
// operand is already plaintext: a replicated caller would reveal first
// (an explicit ConversionReveal in its own right) rather than this
// kernel doing the revealing implicitly.
func floatOperand(op string, a value.Value) (value.HostFloatTensor, error) {
	ft, ok := a.(value.HostFloatTensor)
	if !ok {
		return value.HostFloatTensor{}, moerrors.Kernel("%s: unsupported operand %T", op, a)
	}
	return ft, nil
}

func sigmoidKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	ft, err := floatOperand("sigmoid", a)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(ft.Data))
	for i, x := range ft.Data {
		out[i] = 1 / (1 + math.Exp(-x))
	}
	return value.HostFloatTensor{Plc: op.Placement, Shape: ft.Shape, Width: ft.Width, Data: out}, nil
}

func reluKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	ft, err := floatOperand("relu", a)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(ft.Data))
	for i, x := range ft.Data {
		if x > 0 {
			out[i] = x
		}
	}
	return value.HostFloatTensor{Plc: op.Placement, Shape: ft.Shape, Width: ft.Width, Data: out}, nil
}

// softmaxKernel treats the whole tensor as one distribution, which is
// correct for the common 1-D case; a real implementation would reduce
// along op.Attrs.Axis for higher-rank tensors.
func softmaxKernel(_ *kernel.Context, op computation.Operation, a value.Value) (value.Value, error) {
	ft, err := floatOperand("softmax", a)
	if err != nil {
		return nil, err
	}
	if len(ft.Data) == 0 {
		return value.HostFloatTensor{Plc: op.Placement, Shape: ft.Shape, Width: ft.Width}, nil
	}
	max := ft.Data[0]
	for _, x := range ft.Data[1:] {
		if x > max {
			max = x
		}
	}
	out := make([]float64, len(ft.Data))
	var sum float64
	for i, x := range ft.Data {
		out[i] = math.Exp(x - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return value.HostFloatTensor{Plc: op.Placement, Shape: ft.Shape, Width: ft.Width, Data: out}, nil
}
