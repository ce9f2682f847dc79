// SPDX-License-Identifier: MIT

package qasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/blockenc/gate"
)

const (
	header  = "OPENQASM 3.0;"
	include = `include "stdgates.inc";`
)

// Builder accumulates OpenQASM 3 statements over a register q of fixed size.
type Builder struct {
	numQubits  int
	statements []string
}

// NewBuilder returns an empty program over numQubits qubits.
func NewBuilder(numQubits int) *Builder {
	return &Builder{numQubits: numQubits}
}

// Append implements gate.Sink.
func (b *Builder) Append(op gate.Op) error {
	if err := op.Validate(); err != nil {
		return err
	}
	for _, q := range append(append([]int(nil), op.Controls...), op.Targets...) {
		if q >= b.numQubits {
			return fmt.Errorf("Append %s: qubit %d of %d: %w", op, q, b.numQubits, ErrQubitOutOfRange)
		}
	}
	b.statements = append(b.statements, Statement(op))

	return nil
}

// Len returns the number of statements.
func (b *Builder) Len() int { return len(b.statements) }

// String returns the complete program.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString(header + "\n")
	sb.WriteString(include + "\n\n")
	fmt.Fprintf(&sb, "qubit[%d] q;\n\n", b.numQubits)
	for _, s := range b.statements {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Statement renders one op. op is assumed valid.
func Statement(op gate.Op) string {
	var sb strings.Builder
	name := strings.ToLower(op.Kind.String())
	if op.IsCNOT() {
		name = "cx"
	} else {
		writeModifiers(&sb, op)
	}

	sb.WriteString(name)
	if op.Kind.IsRotation() {
		sb.WriteString("(" + strconv.FormatFloat(op.Angle, 'g', -1, 64) + ")")
	}
	sb.WriteByte(' ')

	operands := make([]string, 0, len(op.Controls)+len(op.Targets))
	for _, q := range op.Controls {
		operands = append(operands, fmt.Sprintf("q[%d]", q))
	}
	for _, q := range op.Targets {
		operands = append(operands, fmt.Sprintf("q[%d]", q))
	}
	sb.WriteString(strings.Join(operands, ", "))
	sb.WriteByte(';')

	return sb.String()
}

func writeModifiers(sb *strings.Builder, op gate.Op) {
	for i := 0; i < len(op.Controls); {
		state := op.ControlBit(i)
		run := 1
		for i+run < len(op.Controls) && op.ControlBit(i+run) == state {
			run++
		}
		if state == 0 {
			sb.WriteString("neg")
		}
		sb.WriteString("ctrl")
		if run > 1 {
			fmt.Fprintf(sb, "(%d)", run)
		}
		sb.WriteString(" @ ")
		i += run
	}
}
