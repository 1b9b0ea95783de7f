// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Cronexpand expands a cron schedule line into the explicit values
// each time field matches and prints them as a fixed-width table.
//
//	$ cronexpand "*/15 0 1,15 * 1-5 /usr/bin/find"
//	minute        0 15 30 45
//	hour          0
//	day of month  1 15
//	month         1 2 3 4 5 6 7 8 9 10 11 12
//	day of week   1 2 3 4 5
//	command       /usr/bin/find
//
// Exit codes:
//
//	0  report printed
//	1  malformed field, out-of-bounds range, or bad configuration
//	2  no schedule line given (message printed to stdout)
package main
