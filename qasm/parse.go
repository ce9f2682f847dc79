// SPDX-License-Identifier: MIT

package qasm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/blockenc/gate"
)

var (
	registerRegex  = regexp.MustCompile(`^qubit\[(\d+)\]\s+q;$`)
	statementRegex = regexp.MustCompile(`^((?:(?:neg)?ctrl(?:\(\d+\))?\s*@\s*)*)([a-z]+)(?:\(([^)]*)\))?\s+(q\[\d+\](?:\s*,\s*q\[\d+\])*)\s*;$`)
	modifierRegex  = regexp.MustCompile(`(neg)?ctrl(?:\((\d+)\))?\s*@`)
	operandRegex   = regexp.MustCompile(`q\[(\d+)\]`)
)

// Parse reads a program in the form Builder writes and returns its ops and
// the declared register size.
//
// Errors:
//   - ErrSyntax for any unrecognized line or a missing register.
//   - ErrQubitOutOfRange for operands beyond the register.
//   - gate errors for structurally invalid statements.
func Parse(src string) (*gate.Circuit, int, error) {
	c := gate.NewCircuit()
	numQubits := -1
	for i, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "", strings.HasPrefix(line, "//"),
			strings.HasPrefix(line, "OPENQASM"), strings.HasPrefix(line, "include"):
			continue
		}

		if m := registerRegex.FindStringSubmatch(line); m != nil {
			numQubits, _ = strconv.Atoi(m[1])
			continue
		}
		if numQubits < 0 {
			return nil, 0, fmt.Errorf("Parse: line %d: statement before register: %w", i+1, ErrSyntax)
		}

		op, err := parseStatement(line)
		if err != nil {
			return nil, 0, fmt.Errorf("Parse: line %d: %w", i+1, err)
		}
		for _, q := range append(append([]int(nil), op.Controls...), op.Targets...) {
			if q >= numQubits {
				return nil, 0, fmt.Errorf("Parse: line %d: qubit %d of %d: %w", i+1, q, numQubits, ErrQubitOutOfRange)
			}
		}
		if err := c.Append(op); err != nil {
			return nil, 0, fmt.Errorf("Parse: line %d: %w", i+1, err)
		}
	}
	if numQubits < 0 {
		return nil, 0, fmt.Errorf("Parse: no qubit register: %w", ErrSyntax)
	}

	return c, numQubits, nil
}

func parseStatement(line string) (gate.Op, error) {
	m := statementRegex.FindStringSubmatch(line)
	if m == nil {
		return gate.Op{}, fmt.Errorf("%q: %w", line, ErrSyntax)
	}

	var states []int
	for _, mod := range modifierRegex.FindAllStringSubmatch(m[1], -1) {
		run := 1
		if mod[2] != "" {
			run, _ = strconv.Atoi(mod[2])
		}
		state := 1
		if mod[1] != "" {
			state = 0
		}
		for j := 0; j < run; j++ {
			states = append(states, state)
		}
	}

	name := m[2]
	if name == "cx" {
		name = "x"
		states = append(states, 1)
	}
	kind, err := gate.ParseKind(name)
	if err != nil {
		return gate.Op{}, err
	}

	var qubits []int
	for _, o := range operandRegex.FindAllStringSubmatch(m[4], -1) {
		q, _ := strconv.Atoi(o[1])
		qubits = append(qubits, q)
	}
	if len(qubits) <= len(states) {
		return gate.Op{}, fmt.Errorf("%q: %d operands for %d controls: %w", line, len(qubits), len(states), ErrSyntax)
	}

	op := gate.Op{Kind: kind, Targets: qubits[len(states):]}
	if len(states) > 0 {
		op.Controls = qubits[:len(states)]
		for _, s := range states {
			if s == 0 {
				op.Pattern = states
				break
			}
		}
	}
	if kind.IsRotation() {
		if m[3] == "" {
			return gate.Op{}, fmt.Errorf("%q: missing angle: %w", line, ErrSyntax)
		}
		if op.Angle, err = strconv.ParseFloat(strings.TrimSpace(m[3]), 64); err != nil {
			return gate.Op{}, fmt.Errorf("%q: angle: %w", line, ErrSyntax)
		}
	} else if m[3] != "" {
		return gate.Op{}, fmt.Errorf("%q: unexpected parameter: %w", line, ErrSyntax)
	}

	return op, op.Validate()
}
