// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kernel

import (
	"strconv"
	"strings"
	"sync"

	"github.com/luxfi/moose/computation"
	moerrors "github.com/luxfi/moose/errors"
	"github.com/luxfi/moose/placement"
	"github.com/luxfi/moose/value"
)

// table is the single dispatch table: one place that knows about every
// (operator, placement-kind, operand-kinds) triple. It is populated by
// Register calls from the hostkernels and replicatedkernels packages'
// init() functions — code generated from a single operator table,
// expressed here as explicit registration calls rather than a
// build-time generator.
var (
	tableMu sync.RWMutex
	table   = make(map[string]Kernel)
)

func key(op computation.OperatorKind, plcKind placement.Kind, kinds []value.Kind) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(op)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(plcKind)))
	for _, k := range kinds {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(int(k)))
	}
	return b.String()
}

// Register adds a kernel for one (operator, placement-kind,
// operand-kinds) triple to the dispatch table. It is meant to be called
// from package init() functions, before any Dispatch call.
func Register(op computation.OperatorKind, plcKind placement.Kind, operandKinds []value.Kind, k Kernel) {
	tableMu.Lock()
	defer tableMu.Unlock()
	table[key(op, plcKind, operandKinds)] = k
}

// Dispatch selects the kernel for (op, plc, operandKinds). It fails with
// UnimplementedOperator if no entry matches (spec §4.3).
func Dispatch(op computation.OperatorKind, plc placement.Placement, operandKinds []value.Kind) (Kernel, error) {
	tableMu.RLock()
	defer tableMu.RUnlock()

	k, ok := table[key(op, plc.Kind(), operandKinds)]
	if !ok {
		return Kernel{}, moerrors.UnimplementedOperator(op.String(), plc.String())
	}
	return k, nil
}
