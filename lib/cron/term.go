// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Term is one comma-separated segment of a field, parsed but not yet
// resolved against the field's bounds.
type Term struct {
	// Wildcard is set for "*", which takes the field's own bounds in
	// place of Lower and Upper.
	Wildcard bool

	// Lower and Upper are the inclusive range of the term. A single
	// value sets both to the same number.
	Lower, Upper uint8

	// Step is the stride from Lower. A zero Step is treated as 1.
	Step uint8
}

// ParseTerm parses a single term: *, */N, V, V/N, V-V, V-V/N. It only
// checks syntax; bounds are checked when the term is expanded against
// a field.
func ParseTerm(segment string) (Term, error) {
	term := Term{Step: 1}

	rangeExpression, stepExpression, hasStep := strings.Cut(segment, "/")
	if hasStep {
		step, err := parseNumber(stepExpression)
		if err != nil {
			return Term{}, fmt.Errorf("invalid step: %w", err)
		}
		if step == 0 {
			return Term{}, fmt.Errorf("invalid step: %w", &TokenError{Token: stepExpression, Err: errZeroStep})
		}
		term.Step = step
	}

	switch {
	case rangeExpression == "*":
		term.Wildcard = true

	case strings.Contains(rangeExpression, "-"):
		bounds := strings.Split(rangeExpression, "-")
		if len(bounds) != 2 {
			return Term{}, &TokenError{Token: rangeExpression, Err: errRangeShape}
		}
		lower, err := parseNumber(bounds[0])
		if err != nil {
			return Term{}, fmt.Errorf("invalid range start: %w", err)
		}
		upper, err := parseNumber(bounds[1])
		if err != nil {
			return Term{}, fmt.Errorf("invalid range end: %w", err)
		}
		term.Lower, term.Upper = lower, upper

	default:
		value, err := parseNumber(rangeExpression)
		if err != nil {
			return Term{}, fmt.Errorf("invalid value: %w", err)
		}
		term.Lower, term.Upper = value, value
	}

	return term, nil
}

// Resolve returns the inclusive range the term covers within bounds.
func (t Term) Resolve(bounds Bounds) (lower, upper uint8) {
	if t.Wildcard {
		return bounds.Minimum, bounds.Maximum
	}
	return t.Lower, t.Upper
}

// Expand resolves the term against bounds and returns every value from
// the resolved lower bound to the upper bound, stepping by Step. A
// resolved range outside bounds is a *BoundsError. An inverted range
// (5-3) yields an empty set.
func (t Term) Expand(bounds Bounds) (Set, error) {
	lower, upper := t.Resolve(bounds)
	if lower < bounds.Minimum || upper > bounds.Maximum {
		return Set{}, &BoundsError{Lower: lower, Upper: upper, Bounds: bounds}
	}

	step := max(int(t.Step), 1)

	var values Set
	for value := int(lower); value <= int(upper); value += step {
		values.Add(uint8(value))
	}
	return values, nil
}

// parseNumber parses text as an unsigned 8-bit decimal integer.
func parseNumber(text string) (uint8, error) {
	value, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		reason := err
		var numError *strconv.NumError
		if errors.As(err, &numError) {
			reason = numError.Err
		}
		return 0, &TokenError{Token: text, Err: reason}
	}
	return uint8(value), nil
}
