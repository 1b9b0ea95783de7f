// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bureau-foundation/cronexpand/lib/cron"
)

// LabelWidth is the column where row values start. Longer labels are
// written in full with no padding.
const LabelWidth = 14

// CommandLabel labels the command row.
const CommandLabel = "command"

// Label pads name with spaces to LabelWidth.
func Label(name string) string {
	return fmt.Sprintf("%-*s", LabelWidth, name)
}

// SetRow formats a labeled row of values in ascending order, each
// followed by a single space.
func SetRow(label string, values cron.Set) string {
	var builder strings.Builder
	builder.WriteString(Label(label))
	for _, value := range values.Values() {
		builder.WriteString(strconv.Itoa(value))
		builder.WriteByte(' ')
	}
	return builder.String()
}

// StringRow formats a labeled row holding value verbatim.
func StringRow(label, value string) string {
	return Label(label) + value
}

// Rows returns the six report rows for schedule, time fields first.
func Rows(schedule cron.Schedule) []string {
	rows := make([]string, 0, len(cron.TimeFields)+1)
	for index, set := range schedule.Sets() {
		rows = append(rows, SetRow(cron.TimeFields[index].Name, set))
	}
	return append(rows, StringRow(CommandLabel, schedule.Command))
}

// Write writes the rows for schedule to w, one per line.
func Write(w io.Writer, schedule cron.Schedule) error {
	for _, row := range Rows(schedule) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
