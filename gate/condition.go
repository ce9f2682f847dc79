// SPDX-License-Identifier: MIT

package gate

import "fmt"

// Conditioned is a Sink decorator that conditions every appended op on a set
// of outer control qubits before forwarding it.
//
// Controls required to be 0 are X-conjugated: Condition emits an X on each of
// them before the first op, and Close emits the matching X after the last
// one. Between the two, forwarded ops require every outer control to be 1.
type Conditioned struct {
	sink     Sink
	controls []int
	zeros    []int
	closed   bool
}

// Condition validates the control specification, emits the opening X gates
// into sink and returns the decorator. states nil means every control must
// be 1.
//
// Errors:
//   - ErrInconsistentControlSpec if len(states) != len(controls) or a state
//     is not 0 or 1.
//   - ErrQubitRange for negative or repeated control qubits.
func Condition(sink Sink, controls, states []int) (*Conditioned, error) {
	if states != nil && len(states) != len(controls) {
		return nil, fmt.Errorf("Condition: %d controls, %d states: %w", len(controls), len(states), ErrInconsistentControlSpec)
	}
	seen := make(map[int]struct{}, len(controls))
	var zeros []int
	for i, q := range controls {
		if q < 0 {
			return nil, fmt.Errorf("Condition: control %d: %w", q, ErrQubitRange)
		}
		if _, dup := seen[q]; dup {
			return nil, fmt.Errorf("Condition: control %d repeated: %w", q, ErrQubitRange)
		}
		seen[q] = struct{}{}
		if states == nil {
			continue
		}
		switch states[i] {
		case 0:
			zeros = append(zeros, q)
		case 1:
		default:
			return nil, fmt.Errorf("Condition: control state %d: %w", states[i], ErrInconsistentControlSpec)
		}
	}

	c := &Conditioned{sink: sink, controls: cloneInts(controls), zeros: zeros}
	if err := c.flipZeros(); err != nil {
		return nil, err
	}

	return c, nil
}

// Append conditions op on the outer controls and forwards it.
func (c *Conditioned) Append(op Op) error {
	if c.closed {
		return fmt.Errorf("Conditioned.Append after Close: %w", ErrInconsistentControlSpec)
	}
	if len(c.controls) == 0 {
		return c.sink.Append(op)
	}
	wrapped, err := op.WithControls(c.controls, nil)
	if err != nil {
		return err
	}

	return c.sink.Append(wrapped)
}

// Close emits the closing X gates. Calling Close twice is a no-op.
func (c *Conditioned) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	return c.flipZeros()
}

func (c *Conditioned) flipZeros() error {
	for _, q := range c.zeros {
		x, err := NewGate(X, q)
		if err != nil {
			return err
		}
		if err := c.sink.Append(x); err != nil {
			return err
		}
	}

	return nil
}

// ConditionCircuit returns body wrapped as one block conditioned on controls
// holding states (nil means all ones).
func ConditionCircuit(body *Circuit, controls, states []int) (*Circuit, error) {
	out := NewCircuit()
	cond, err := Condition(out, controls, states)
	if err != nil {
		return nil, err
	}
	if err := body.Replay(cond); err != nil {
		return nil, err
	}
	if err := cond.Close(); err != nil {
		return nil, err
	}

	return out, nil
}
