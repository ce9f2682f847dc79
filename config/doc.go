// SPDX-License-Identifier: MIT

// Package config holds the settings of the blockenc command: a YAML file,
// overlaid by BLOCKENC_* environment variables (optionally loaded from a
// .env file), with defaults filled in for anything left unset.
package config
