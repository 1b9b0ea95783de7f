// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for cronexpand.
//
// The central type is [Command]: a named command with a
// [pflag.FlagSet] factory and a Run function. [Command.Execute]
// handles help flags, flag parsing, and structured help output with
// examples. Flag sets are usually built from a tagged params struct
// with [FlagsFromParams].
//
// When a user types an unknown flag, the framework computes
// Levenshtein edit distance against all known flag names and suggests
// the closest match (threshold: distance <= 3).
//
// [ExitError] lets a Run function choose its exit code after writing
// its own output, and [NewCommandLogger] builds the stderr logger.
package cli
