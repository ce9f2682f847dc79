// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"
	"strings"
)

// Circuit is an append-only, order-preserving log of ops. It is itself a
// Sink, so compilers can emit into it and the log can later be replayed
// into any other backend.
//
// The zero value is an empty circuit ready to use. A Circuit is not safe
// for concurrent use.
type Circuit struct {
	ops []Op
}

// NewCircuit returns an empty circuit.
func NewCircuit() *Circuit { return &Circuit{} }

// Append validates op and stores a copy of it.
func (c *Circuit) Append(op Op) error {
	if err := op.Validate(); err != nil {
		return err
	}
	c.ops = append(c.ops, op.Clone())

	return nil
}

// Len returns the number of ops.
func (c *Circuit) Len() int { return len(c.ops) }

// Ops returns copies of the ops in emission order.
func (c *Circuit) Ops() []Op {
	out := make([]Op, len(c.ops))
	for i, op := range c.ops {
		out[i] = op.Clone()
	}

	return out
}

// At returns a copy of op i.
func (c *Circuit) At(i int) Op { return c.ops[i].Clone() }

// Count returns how many ops have kind k.
func (c *Circuit) Count(k Kind) int {
	n := 0
	for _, op := range c.ops {
		if op.Kind == k {
			n++
		}
	}

	return n
}

// CNOTCount returns how many ops are single-control X gates.
func (c *Circuit) CNOTCount() int {
	n := 0
	for _, op := range c.ops {
		if op.IsCNOT() {
			n++
		}
	}

	return n
}

// RotationCount returns how many ops are RX, RY or RZ.
func (c *Circuit) RotationCount() int {
	n := 0
	for _, op := range c.ops {
		if op.Kind.IsRotation() {
			n++
		}
	}

	return n
}

// NumQubits returns one more than the largest qubit index used, or 0 for an
// empty circuit.
func (c *Circuit) NumQubits() int {
	highest := -1
	for _, op := range c.ops {
		for _, q := range op.Targets {
			highest = max(highest, q)
		}
		for _, q := range op.Controls {
			highest = max(highest, q)
		}
	}

	return highest + 1
}

// Depth returns the number of layers when every op is scheduled as early as
// the qubits it touches allow.
func (c *Circuit) Depth() int {
	frontier := make(map[int]int)
	depth := 0
	for _, op := range c.ops {
		layer := 0
		for _, q := range op.Targets {
			layer = max(layer, frontier[q])
		}
		for _, q := range op.Controls {
			layer = max(layer, frontier[q])
		}
		layer++
		for _, q := range op.Targets {
			frontier[q] = layer
		}
		for _, q := range op.Controls {
			frontier[q] = layer
		}
		depth = max(depth, layer)
	}

	return depth
}

// Extend appends every op of other to c.
func (c *Circuit) Extend(other *Circuit) {
	for _, op := range other.ops {
		c.ops = append(c.ops, op.Clone())
	}
}

// Reverse returns a new circuit with c's ops in reverse order. Angles are
// kept as they are.
func (c *Circuit) Reverse() *Circuit {
	out := &Circuit{ops: make([]Op, len(c.ops))}
	for i, op := range c.ops {
		out.ops[len(c.ops)-1-i] = op.Clone()
	}

	return out
}

// Inverse returns the adjoint circuit: ops reversed and each op inverted.
func (c *Circuit) Inverse() *Circuit {
	out := &Circuit{ops: make([]Op, len(c.ops))}
	for i, op := range c.ops {
		out.ops[len(c.ops)-1-i] = op.Inverse()
	}

	return out
}

// Replay appends every op of c to s in order and stops at the first error.
func (c *Circuit) Replay(s Sink) error {
	for i, op := range c.ops {
		if err := s.Append(op.Clone()); err != nil {
			return fmt.Errorf("Replay: op %d (%s): %w", i, op, err)
		}
	}

	return nil
}

// String lists one op per line.
func (c *Circuit) String() string {
	var b strings.Builder
	for _, op := range c.ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}

	return b.String()
}
