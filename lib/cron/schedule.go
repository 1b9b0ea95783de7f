// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"fmt"
	"strings"
)

// CommandMode selects how the command field is taken from a line.
type CommandMode string

const (
	// CommandRemainder splits off the five time fields and keeps the
	// rest of the line, spaces included, as the command.
	CommandRemainder CommandMode = "remainder"

	// CommandToken splits the whole line on spaces and takes the sixth
	// token as the command. Later tokens are dropped.
	CommandToken CommandMode = "token"
)

// Valid reports whether m is a known mode.
func (m CommandMode) Valid() bool {
	return m == CommandRemainder || m == CommandToken
}

// Schedule is the expansion of one schedule line.
type Schedule struct {
	Minutes     Set
	Hours       Set
	DaysOfMonth Set
	Months      Set
	DaysOfWeek  Set
	Command     string
}

// Sets returns the expanded time fields in the order of [TimeFields].
func (s Schedule) Sets() [5]Set {
	return [5]Set{s.Minutes, s.Hours, s.DaysOfMonth, s.Months, s.DaysOfWeek}
}

// SplitLine splits a schedule line on single spaces into the five
// time field expressions and the command. Spaces are not collapsed:
// "1  2" has an empty field between the two spaces.
func SplitLine(line string, mode CommandMode) ([5]string, string, error) {
	var parts []string
	switch mode {
	case CommandRemainder:
		parts = strings.SplitN(line, " ", 6)
	case CommandToken:
		parts = strings.Split(line, " ")
	default:
		return [5]string{}, "", fmt.Errorf("cron: unknown command mode %q", mode)
	}

	if len(parts) < 6 {
		return [5]string{}, "", fmt.Errorf("cron: %w: expected 6, got %d", ErrFieldCount, len(parts))
	}

	var expressions [5]string
	copy(expressions[:], parts[:5])
	return expressions, parts[5], nil
}

// ExpandLine splits line and expands each time field against its
// bounds. Any failure aborts the whole line.
func ExpandLine(line string, mode CommandMode) (Schedule, error) {
	expressions, command, err := SplitLine(line, mode)
	if err != nil {
		return Schedule{}, err
	}

	var sets [5]Set
	for index, field := range TimeFields {
		sets[index], err = ExpandField(expressions[index], field.Bounds)
		if err != nil {
			return Schedule{}, fmt.Errorf("cron: %s field: %w", field.Name, err)
		}
	}

	return Schedule{
		Minutes:     sets[0],
		Hours:       sets[1],
		DaysOfMonth: sets[2],
		Months:      sets[3],
		DaysOfWeek:  sets[4],
		Command:     command,
	}, nil
}
