// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedToken matches any term component that is not an
	// unsigned 8-bit integer, or a term with an invalid shape.
	ErrMalformedToken = errors.New("malformed token")

	// ErrOutOfBounds matches a resolved range outside its field's bounds.
	ErrOutOfBounds = errors.New("range out of bounds")

	// ErrFieldCount matches a schedule line with fewer than six fields.
	ErrFieldCount = errors.New("wrong number of fields")
)

var (
	errZeroStep   = errors.New("step must be positive")
	errRangeShape = errors.New("range must have exactly two bounds")
)

// TokenError reports the text of a term component that could not be
// parsed.
type TokenError struct {
	// Token is the offending text, exactly as it appeared in the term.
	Token string

	// Err describes why Token was rejected (strconv.ErrSyntax,
	// strconv.ErrRange, or a shape error).
	Err error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("malformed token %q: %v", e.Token, e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }

// Is reports ErrMalformedToken as a match so callers can test the
// category without unwrapping.
func (e *TokenError) Is(target error) bool { return target == ErrMalformedToken }

// BoundsError reports a resolved term range that falls outside the
// legal bounds of its field.
type BoundsError struct {
	Lower, Upper uint8
	Bounds       Bounds
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("range %d-%d is outside the bounds %d-%d",
		e.Lower, e.Upper, e.Bounds.Minimum, e.Bounds.Maximum)
}

func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }
