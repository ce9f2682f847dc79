// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"
	"strings"
)

// Kind enumerates the supported gate kinds.
type Kind uint8

const (
	X Kind = iota + 1
	Y
	Z
	H
	SWAP
	RX
	RY
	RZ
)

var kindNames = [...]string{
	X:    "X",
	Y:    "Y",
	Z:    "Z",
	H:    "H",
	SWAP: "SWAP",
	RX:   "RX",
	RY:   "RY",
	RZ:   "RZ",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool { return k >= X && k <= RZ }

// IsRotation reports whether k is RX, RY or RZ.
func (k Kind) IsRotation() bool { return k == RX || k == RY || k == RZ }

// ParseKind maps a case-insensitive gate name onto its Kind.
func ParseKind(name string) (Kind, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for k := X; k <= RZ; k++ {
		if kindNames[k] == upper {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnsupportedGateKind)
}
