// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "strings"

// Bounds is the inclusive legal domain of one time field.
type Bounds struct {
	Minimum, Maximum uint8
}

// Field is one of the five time fields of a schedule line.
type Field struct {
	// Name is the label used in reports ("day of month").
	Name   string
	Bounds Bounds
}

var (
	Minute     = Field{Name: "minute", Bounds: Bounds{Minimum: 0, Maximum: 59}}
	Hour       = Field{Name: "hour", Bounds: Bounds{Minimum: 0, Maximum: 23}}
	DayOfMonth = Field{Name: "day of month", Bounds: Bounds{Minimum: 1, Maximum: 30}}
	Month      = Field{Name: "month", Bounds: Bounds{Minimum: 1, Maximum: 12}}
	DayOfWeek  = Field{Name: "day of week", Bounds: Bounds{Minimum: 1, Maximum: 7}}
)

// TimeFields lists the time fields in the order they appear on a
// schedule line.
var TimeFields = [5]Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}

// ExpandField parses a comma-separated field expression and returns
// the union of its terms' values within bounds. The first malformed
// or out-of-bounds term aborts the expansion.
func ExpandField(expression string, bounds Bounds) (Set, error) {
	var result Set
	for _, segment := range strings.Split(expression, ",") {
		term, err := ParseTerm(segment)
		if err != nil {
			return Set{}, err
		}
		values, err := term.Expand(bounds)
		if err != nil {
			return Set{}, err
		}
		result.Union(values)
	}
	return result, nil
}
