// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package computation defines the closed operator catalogue (spec §3,
// §4.2) and the Computation/Operation graph the dispatcher and both
// sessions walk. The catalogue is a single enumerated table, generated
// here as a Go const block plus an arity lookup, so that — per spec §9 —
// there remains exactly one place that knows about every operator.
package computation

import "fmt"

// OperatorKind enumerates every operator this runtime can dispatch.
type OperatorKind uint16

const (
	OpAbs OperatorKind = iota
	OpAdd
	OpAddN
	OpAnd
	OpArgmax
	OpAtLeast2D
	OpBitCompose
	OpBitDecompose
	OpBitExtract
	OpBroadcast
	OpCast
	OpConcat
	OpConstant
	OpDecrypt
	OpDemirror
	OpDeriveSeed
	OpDiag
	OpDiv
	OpDot
	OpEqual
	OpEqualZero
	OpExp
	OpExpandDims
	OpFill
	OpFixedpointEncode
	OpFixedpointDecode
	OpGreater
	OpIdentity
	OpIndex
	OpIndexAxis
	OpInput
	OpInverse
	OpLess
	OpLoad
	OpLog
	OpLog2
	OpMaximum
	OpMean
	OpMirror
	OpMsb
	OpMul
	OpMux
	OpNeg
	OpOnes
	OpOr
	OpOutput
	OpPow2
	OpPrfKeyGen
	OpReceive
	OpRelu
	OpRepToAdt
	OpAdtToRep
	OpReplicatedSetup
	OpReshape
	OpReveal
	OpRingFixedpointArgmax
	OpRingFixedpointDecode
	OpRingFixedpointEncode
	OpRingFixedpointMean
	OpRingInject
	OpSample
	OpSampleSeeded
	OpSave
	OpSend
	OpShape
	OpShare
	OpShl
	OpShlDim
	OpShr
	OpSigmoid
	OpSign
	OpSlice
	OpSoftmax
	OpSqrt
	OpSqueeze
	OpSub
	OpSum
	OpTranspose
	OpTruncPr
	OpXor
	OpZeros

	opKindCount
)

var operatorNames = [...]string{
	OpAbs:                  "abs",
	OpAdd:                  "add",
	OpAddN:                 "add_n",
	OpAnd:                  "and",
	OpArgmax:               "argmax",
	OpAtLeast2D:            "at_least_2d",
	OpBitCompose:           "bit_compose",
	OpBitDecompose:         "bit_decompose",
	OpBitExtract:           "bit_extract",
	OpBroadcast:            "broadcast",
	OpCast:                 "cast",
	OpConcat:               "concat",
	OpConstant:             "constant",
	OpDecrypt:              "decrypt",
	OpDemirror:             "demirror",
	OpDeriveSeed:           "derive_seed",
	OpDiag:                 "diag",
	OpDiv:                  "div",
	OpDot:                  "dot",
	OpEqual:                "equal",
	OpEqualZero:            "equal_zero",
	OpExp:                  "exp",
	OpExpandDims:           "expand_dims",
	OpFill:                 "fill",
	OpFixedpointEncode:     "fixedpoint_encode",
	OpFixedpointDecode:     "fixedpoint_decode",
	OpGreater:              "greater",
	OpIdentity:             "identity",
	OpIndex:                "index",
	OpIndexAxis:            "index_axis",
	OpInput:                "input",
	OpInverse:              "inverse",
	OpLess:                 "less",
	OpLoad:                 "load",
	OpLog:                  "log",
	OpLog2:                 "log2",
	OpMaximum:              "maximum",
	OpMean:                 "mean",
	OpMirror:               "mirror",
	OpMsb:                  "msb",
	OpMul:                  "mul",
	OpMux:                  "mux",
	OpNeg:                  "neg",
	OpOnes:                 "ones",
	OpOr:                   "or",
	OpOutput:               "output",
	OpPow2:                 "pow2",
	OpPrfKeyGen:            "prf_key_gen",
	OpReceive:              "receive",
	OpRelu:                 "relu",
	OpRepToAdt:             "rep_to_adt",
	OpAdtToRep:             "adt_to_rep",
	OpReplicatedSetup:      "replicated_setup",
	OpReshape:              "reshape",
	OpReveal:               "reveal",
	OpRingFixedpointArgmax: "ring_fixedpoint_argmax",
	OpRingFixedpointDecode: "ring_fixedpoint_decode",
	OpRingFixedpointEncode: "ring_fixedpoint_encode",
	OpRingFixedpointMean:   "ring_fixedpoint_mean",
	OpRingInject:           "ring_inject",
	OpSample:               "sample",
	OpSampleSeeded:         "sample_seeded",
	OpSave:                 "save",
	OpSend:                 "send",
	OpShape:                "shape",
	OpShare:                "share",
	OpShl:                  "shl",
	OpShlDim:               "shl_dim",
	OpShr:                  "shr",
	OpSigmoid:              "sigmoid",
	OpSign:                 "sign",
	OpSlice:                "slice",
	OpSoftmax:              "softmax",
	OpSqrt:                 "sqrt",
	OpSqueeze:              "squeeze",
	OpSub:                  "sub",
	OpSum:                  "sum",
	OpTranspose:            "transpose",
	OpTruncPr:              "trunc_pr",
	OpXor:                  "xor",
	OpZeros:                "zeros",
}

func (k OperatorKind) String() string {
	if int(k) < len(operatorNames) && operatorNames[k] != "" {
		return operatorNames[k]
	}
	return fmt.Sprintf("OperatorKind(%d)", k)
}

// Arity classifies how many operands an operator's Operation.Inputs must
// carry (spec §4.2). The dispatcher pops exactly this many named
// operands; a mismatch is a fatal InvalidArgument.
type Arity uint8

const (
	ArityNullary Arity = iota
	ArityUnary
	ArityBinary
	ArityTernary
	ArityVariadic
)

var arityTable = map[OperatorKind]Arity{
	OpConstant:   ArityNullary,
	OpInput:      ArityNullary,
	OpSample:     ArityNullary,
	OpSampleSeeded: ArityUnary, // takes a seed operand
	OpFill:       ArityNullary, // shape is a static attribute
	OpOnes:       ArityNullary,
	OpZeros:      ArityNullary,
	OpPrfKeyGen:  ArityNullary,
	OpDeriveSeed: ArityUnary, // takes a PRF key operand
	OpReplicatedSetup: ArityNullary,
	OpLoad:       ArityBinary, // key, query

	OpIdentity:     ArityUnary,
	OpNeg:          ArityUnary,
	OpAbs:          ArityUnary,
	OpSqrt:         ArityUnary,
	OpExp:          ArityUnary,
	OpLog:          ArityUnary,
	OpLog2:         ArityUnary,
	OpSigmoid:      ArityUnary,
	OpRelu:         ArityUnary,
	OpSign:         ArityUnary,
	OpMsb:          ArityUnary,
	OpTranspose:    ArityUnary,
	OpShape:        ArityUnary,
	OpSqueeze:      ArityUnary,
	OpExpandDims:   ArityUnary,
	OpAtLeast2D:    ArityUnary,
	OpReshape:      ArityBinary, // x, shape
	OpBroadcast:    ArityBinary, // x, shape
	OpCast:         ArityUnary,
	OpSum:          ArityUnary,
	OpMean:         ArityUnary,
	OpArgmax:       ArityUnary,
	OpSoftmax:      ArityUnary,
	OpSlice:        ArityUnary,
	OpIndex:        ArityUnary,
	OpIndexAxis:    ArityUnary,
	OpDiag:         ArityUnary,
	OpBitDecompose: ArityUnary,
	OpBitCompose:   ArityUnary,
	OpBitExtract:   ArityUnary,
	OpRingInject:   ArityUnary,
	OpFixedpointEncode:     ArityUnary,
	OpFixedpointDecode:     ArityUnary,
	OpRingFixedpointEncode: ArityUnary,
	OpRingFixedpointDecode: ArityUnary,
	OpRingFixedpointMean:   ArityUnary,
	OpRingFixedpointArgmax: ArityUnary,
	OpShl:      ArityUnary,
	OpShr:      ArityUnary,
	OpShlDim:   ArityUnary,
	OpTruncPr:  ArityUnary,
	OpPow2:     ArityUnary,
	OpEqualZero: ArityUnary,
	OpInverse:  ArityUnary,
	OpMirror:   ArityUnary,
	OpDemirror: ArityUnary,
	OpShare:    ArityUnary,
	OpReveal:   ArityUnary,
	OpRepToAdt: ArityUnary,
	OpAdtToRep: ArityUnary,
	OpDecrypt:  ArityUnary,
	OpOutput:   ArityUnary,
	OpSave:     ArityBinary, // key, value
	OpSend:     ArityUnary,
	OpReceive:  ArityNullary,

	OpAdd:     ArityBinary,
	OpSub:     ArityBinary,
	OpMul:     ArityBinary,
	OpDiv:     ArityBinary,
	OpDot:     ArityBinary,
	OpLess:    ArityBinary,
	OpGreater: ArityBinary,
	OpEqual:   ArityBinary,
	OpAnd:     ArityBinary,
	OpOr:      ArityBinary,
	OpXor:     ArityBinary,

	OpMux: ArityTernary,

	OpAddN:    ArityVariadic,
	OpConcat:  ArityVariadic,
	OpMaximum: ArityVariadic,
}

// Arity returns the declared arity for k. Operators absent from the
// table are a programming error (every OperatorKind must be
// classified); New will reject them defensively.
func (k OperatorKind) Arity() (Arity, bool) {
	a, ok := arityTable[k]
	return a, ok
}

// NumOperands returns how many named operands an operation with this
// arity takes, or -1 for ArityVariadic (any count, including zero for
// some operators but never for AddN — that is an operator-level
// invariant checked by New and by the add_n kernel, not here).
func (a Arity) NumOperands() int {
	switch a {
	case ArityNullary:
		return 0
	case ArityUnary:
		return 1
	case ArityBinary:
		return 2
	case ArityTernary:
		return 3
	default:
		return -1
	}
}
