// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package errors defines the closed set of error kinds the execution core
// can raise (spec §7) and the propagation helpers the dispatcher and
// executors use to attach the failing operation before returning.
package errors

import (
	"fmt"

	cockroacherrors "github.com/cockroachdb/errors"
)

// Sentinel errors. Use errors.Is against these, never string matching.
var (
	// ErrInvalidArgument marks structurally invalid input, e.g. AddN on an
	// empty operand list.
	ErrInvalidArgument = cockroacherrors.New("invalid argument")

	// ErrKernel marks a kernel failure: shape mismatch, non-invertible
	// reshape, reduction over an empty axis, and similar internal faults.
	ErrKernel = cockroacherrors.New("kernel error")

	// ErrUnimplementedOperator marks a dispatch miss: no kernel is
	// registered for the requested (operator, placement, operand-kinds)
	// triple.
	ErrUnimplementedOperator = cockroacherrors.New("unimplemented operator")

	// ErrCompilation marks a symbolic-session lowering failure: an
	// operator that cannot be symbolically executed, or a session whose
	// state could not be exclusively taken at finalization.
	ErrCompilation = cockroacherrors.New("compilation error")

	// ErrMissingArgument marks an InputOp referencing a name absent from
	// the launch arguments.
	ErrMissingArgument = cockroacherrors.New("missing argument")
)

// UnimplementedOperator builds an ErrUnimplementedOperator carrying the
// operator and placement that failed to dispatch.
func UnimplementedOperator(op, placement string) error {
	return cockroacherrors.Wrapf(ErrUnimplementedOperator, "operator %q on placement %s", op, placement)
}

// MissingArgument builds an ErrMissingArgument carrying the missing name.
func MissingArgument(name string) error {
	return cockroacherrors.Wrapf(ErrMissingArgument, "argument %q", name)
}

// InvalidArgument builds an ErrInvalidArgument with a formatted message.
func InvalidArgument(format string, args ...interface{}) error {
	return cockroacherrors.Wrapf(ErrInvalidArgument, format, args...)
}

// Kernel builds an ErrKernel with a formatted message.
func Kernel(format string, args ...interface{}) error {
	return cockroacherrors.Wrapf(ErrKernel, format, args...)
}

// Compilation builds an ErrCompilation with a formatted message.
func Compilation(format string, args ...interface{}) error {
	return cockroacherrors.Wrapf(ErrCompilation, format, args...)
}

// WithOperation annotates err with the operation name that was executing
// when it occurred. The executor calls this once, at the point an
// operation's kernel invocation fails, before aborting the Computation.
func WithOperation(err error, opName string) error {
	if err == nil {
		return nil
	}
	return cockroacherrors.WithMessage(err, fmt.Sprintf("operation %q", opName))
}

// Is re-exports cockroachdb/errors.Is for callers that don't want to
// import both packages.
func Is(err, target error) bool {
	return cockroacherrors.Is(err, target)
}
