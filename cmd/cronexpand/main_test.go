// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/cronexpand/lib/config"
)

// runCommand runs the binary's entry point with an isolated
// environment and returns the exit code and captured output.
func runCommand(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_EndToEnd(t *testing.T) {
	code, stdout, stderr := runCommand(t, "0 0 1 1 1 run-backup")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}

	want := "minute        0 \n" +
		"hour          0 \n" +
		"day of month  1 \n" +
		"month         1 \n" +
		"day of week   1 \n" +
		"command       run-backup\n"
	if stdout != want {
		t.Errorf("stdout:\n%q\nwant:\n%q", stdout, want)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty at default log level", stderr)
	}
}

func TestRun_Ranges(t *testing.T) {
	code, stdout, stderr := runCommand(t, "*/15 0 1,15 * 1-5 /usr/bin/find")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}

	want := "minute        0 15 30 45 \n" +
		"hour          0 \n" +
		"day of month  1 15 \n" +
		"month         1 2 3 4 5 6 7 8 9 10 11 12 \n" +
		"day of week   1 2 3 4 5 \n" +
		"command       /usr/bin/find\n"
	if stdout != want {
		t.Errorf("stdout:\n%q\nwant:\n%q", stdout, want)
	}
}

func TestRun_CommandModes(t *testing.T) {
	line := "0 0 1 1 1 /usr/bin/find /tmp -name core"

	_, stdout, _ := runCommand(t, line)
	if !strings.HasSuffix(stdout, "command       /usr/bin/find /tmp -name core\n") {
		t.Errorf("remainder mode stdout = %q", stdout)
	}

	_, stdout, _ = runCommand(t, "--command-mode=token", line)
	if !strings.HasSuffix(stdout, "command       /usr/bin/find\n") {
		t.Errorf("token mode stdout = %q", stdout)
	}
}

func TestRun_UnquotedLine(t *testing.T) {
	code, stdout, _ := runCommand(t, "5", "4", "3", "2", "1", "run")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(stdout, "minute        5 \nhour          4 \n") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_MissingArgument(t *testing.T) {
	code, stdout, stderr := runCommand(t)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if stdout != missingArgumentMessage+"\n" {
		t.Errorf("stdout = %q, want missing argument message", stdout)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"malformed", []string{"aa 0 1 1 1 cmd"}, `error: cron: minute field: invalid value: malformed token "aa": invalid syntax`},
		{"out_of_bounds", []string{"0 0 1-31 1 1 cmd"}, "error: cron: day of month field: range 1-31 is outside the bounds 1-30"},
		{"too_few_fields", []string{"0 0 1 1 1"}, "error: cron: wrong number of fields: expected 6, got 5"},
		{"bad_mode", []string{"--command-mode=words", "0 0 1 1 1 cmd"}, `error: --command-mode: invalid command_mode: "words"`},
		{"unknown_flag", []string{"--verbos", "0 0 1 1 1 cmd"}, "did you mean --verbose?"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, stdout, stderr := runCommand(t, test.args...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want no partial output", stdout)
			}
			if !strings.Contains(stderr, test.wantErr) {
				t.Errorf("stderr = %q, want %q", stderr, test.wantErr)
			}
		})
	}
}

func TestRun_VerboseLogsFields(t *testing.T) {
	code, _, stderr := runCommand(t, "-v", "*/30 0 1 1 1 cmd")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d log records, want 5:\n%s", len(lines), stderr)
	}

	// stderr is a buffer, not a terminal, so records are JSON.
	var record struct {
		Message string `json:"msg"`
		Command string `json:"command"`
		Field   string `json:"field"`
		Values  []int  `json:"values"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("first record is not JSON: %v\n%s", err, lines[0])
	}
	if record.Message != "expanded field" || record.Command != "cronexpand" || record.Field != "minute" {
		t.Errorf("record = %+v", record)
	}
	if len(record.Values) != 2 || record.Values[0] != 0 || record.Values[1] != 30 {
		t.Errorf("values = %v, want [0 30]", record.Values)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cronexpand.toml")
	content := "command_mode = \"token\"\nlog_level = \"error\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCommand(t, "--config", path, "0 0 1 1 1 a b c")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if !strings.HasSuffix(stdout, "command       a\n") {
		t.Errorf("stdout = %q, want token-mode command", stdout)
	}
}

func TestRun_ConfigFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cronexpand.yaml")
	if err := os.WriteFile(path, []byte("log_level: shout\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	t.Setenv(config.EnvironmentVariable, path)
	code := run([]string{"0 0 1 1 1 cmd"}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), `invalid log_level: "shout"`) {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_VersionAndHelp(t *testing.T) {
	code, stdout, _ := runCommand(t, "--version")
	if code != 0 || !strings.HasPrefix(stdout, "cronexpand 0.1.0-dev") {
		t.Errorf("--version: code = %d, stdout = %q", code, stdout)
	}

	code, stdout, stderr := runCommand(t, "--help")
	if code != 0 {
		t.Errorf("--help exit code = %d", code)
	}
	if stdout != "" {
		t.Errorf("--help wrote to stdout: %q", stdout)
	}
	if !strings.Contains(stderr, "Usage:\n  cronexpand [flags] LINE") {
		t.Errorf("--help stderr = %q", stderr)
	}
}
