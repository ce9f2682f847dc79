// SPDX-License-Identifier: MIT

// Command blockenc compiles random normalized vectors (state preparation) or
// matrices (block encoding) into gate sequences, simulates them and reports
// the reconstruction error and gate counts.
//
//	blockenc --mode block --qubits 2 --trials 5 --qasm last.qasm
//
// Settings come from, in increasing precedence: defaults, --config YAML,
// BLOCKENC_* variables (a .env file in the working directory is loaded
// first), command-line flags.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
