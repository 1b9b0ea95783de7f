// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package report renders an expanded schedule as a fixed-width table:
// one row per field, the field name left-justified in a 14-column
// label, followed by the field's values.
//
//	minute        0 15 30 45
//	hour          0
//	day of month  1 15
//	month         1 2 3 4 5 6 7 8 9 10 11 12
//	day of week   1 2 3 4 5
//	command       /usr/bin/find
//
// Set rows end with a trailing space after the last value. The command
// row is written verbatim.
package report
