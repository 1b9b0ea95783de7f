// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/cronexpand/cmd/cronexpand/cli"
	"github.com/bureau-foundation/cronexpand/lib/config"
	"github.com/bureau-foundation/cronexpand/lib/cron"
	"github.com/bureau-foundation/cronexpand/lib/report"
	"github.com/bureau-foundation/cronexpand/lib/version"
)

// missingArgumentMessage is printed to stdout when no line is given.
const missingArgumentMessage = "error: couldn't parse input argument: expected a schedule line"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and maps its result to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	err := rootCommand(stdout, stderr).Execute(args)
	if err == nil {
		return 0
	}

	// Commands that print their own output return an error carrying
	// the exit code. Don't print a redundant "error:" line for those.
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

type parameters struct {
	ConfigPath  string `flag:"config" desc:"configuration file (.yaml, .yml, .json, .jsonc, .toml); defaults to $CRONEXPAND_CONFIG"`
	CommandMode string `flag:"command-mode" desc:"how the command field is taken: remainder or token (overrides config)"`
	Verbose     bool   `flag:"verbose,v" desc:"log each expanded field to stderr"`
	Version     bool   `flag:"version" desc:"print version information and exit"`
}

func rootCommand(stdout, stderr io.Writer) *cli.Command {
	var params parameters
	return &cli.Command{
		Name:    "cronexpand",
		Summary: "Expand a cron schedule line into explicit field values",
		Description: `Expand a cron schedule line into explicit field values.

LINE holds six fields separated by single spaces: minute, hour, day of
month, month, day of week, and command. Each time field accepts *,
single values, ranges (a-b), steps (/n), and comma-separated lists of
these. By default everything after the fifth field is the command.`,
		Usage: "cronexpand [flags] LINE",
		Examples: []cli.Example{
			{
				Description: "Every 15 minutes past midnight on the 1st and 15th, weekdays",
				Command:     `cronexpand "*/15 0 1,15 * 1-5 /usr/bin/find"`,
			},
			{
				Description: "Keep only the first token of the command",
				Command:     `cronexpand --command-mode=token "0 0 1 1 1 run-backup --full"`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("cronexpand", &params)
		},
		Run: func(args []string) error {
			if params.Version {
				fmt.Fprintf(stdout, "cronexpand %s\n", version.Info())
				return nil
			}
			if len(args) == 0 {
				fmt.Fprintln(stdout, missingArgumentMessage)
				return &cli.ExitError{Code: 2}
			}

			cfg, err := loadConfig(params)
			if err != nil {
				return err
			}

			level := cfg.Level()
			if params.Verbose {
				level = slog.LevelDebug
			}
			logger := cli.NewCommandLogger(stderr, level).With("command", "cronexpand")

			// Several positional arguments are an unquoted line.
			line := strings.Join(args, " ")
			return expand(line, cfg.CommandMode, stdout, logger)
		},
		Output: stderr,
	}
}

// loadConfig reads the config file named by --config or
// CRONEXPAND_CONFIG and applies flag overrides.
func loadConfig(params parameters) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if params.ConfigPath != "" {
		cfg, err = config.LoadFile(params.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if params.CommandMode != "" {
		cfg.CommandMode = cron.CommandMode(params.CommandMode)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--command-mode: %w", err)
		}
	}
	return cfg, nil
}

// expand expands line and writes the report. Nothing is written to
// stdout unless every field expands.
func expand(line string, mode cron.CommandMode, stdout io.Writer, logger *slog.Logger) error {
	schedule, err := cron.ExpandLine(line, mode)
	if err != nil {
		logger.Debug("expansion failed", "line", line, "error", err)
		return err
	}

	sets := schedule.Sets()
	for index, field := range cron.TimeFields {
		logger.Debug("expanded field",
			"field", field.Name,
			"values", sets[index].Values(),
		)
	}

	return report.Write(stdout, schedule)
}
