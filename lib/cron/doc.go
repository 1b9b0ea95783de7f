// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cron expands cron-style schedule fields into the explicit
// set of integer values each field matches.
//
// A schedule line has six fields separated by single spaces:
//
//	┌───────────── minute (0-59)
//	│ ┌───────────── hour (0-23)
//	│ │ ┌───────────── day of month (1-30)
//	│ │ │ ┌───────────── month (1-12)
//	│ │ │ │ ┌───────────── day of week (1-7)
//	│ │ │ │ │ ┌───────────── command
//	│ │ │ │ │ │
//	* * * * * /usr/bin/find
//
// Each time field is a comma-separated list of terms:
//   - Wildcard: *
//   - Single values: 5
//   - Ranges: 1-5
//   - Steps: */15, 1-30/5, 3/3
//
// A step is anchored at the lower bound of its own term, so 4-10/3
// expands to 4 7 10. Every number is an unsigned 8-bit value. No named
// days or months, no time arithmetic: fields are abstract integer
// domains.
//
// Failures are returned as errors that match [ErrMalformedToken],
// [ErrOutOfBounds], or [ErrFieldCount] under [errors.Is]. The typed
// [TokenError] and [BoundsError] carry the offending text or range.
package cron
