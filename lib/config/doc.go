// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for cronexpand.
//
// Configuration is optional. A file is read only when its path is
// given by the CRONEXPAND_CONFIG environment variable (via [Load]) or a
// --config flag (via [LoadFile]). There is no ~/.config discovery and
// no automatic file search; without a path, [Default] applies.
//
// The file format follows the extension:
//
//   - .yaml, .yml -- YAML
//   - .json, .jsonc -- JSON, with // and /* */ comments and trailing
//     commas allowed
//   - .toml -- TOML
//
// Field bounds are fixed and cannot be configured. The file only
// controls logging and how the command field is taken from a line.
package config
