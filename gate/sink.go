// SPDX-License-Identifier: MIT

package gate

// Sink receives emitted operations in order. Implementations must not
// reorder ops; an error aborts the emitting compiler, and ops accepted before
// the failure stay accepted.
type Sink interface {
	Append(op Op) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(op Op) error

// Append calls f(op).
func (f SinkFunc) Append(op Op) error { return f(op) }

// Tee returns a Sink forwarding every op to each of sinks in turn, stopping
// at the first error.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(op Op) error {
		for _, s := range sinks {
			if err := s.Append(op); err != nil {
				return err
			}
		}

		return nil
	})
}
