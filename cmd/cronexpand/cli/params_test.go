// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

type sampleParams struct {
	Config   string `flag:"config" desc:"config file"`
	Mode     string `flag:"mode" desc:"split mode" default:"remainder"`
	Verbose  bool   `flag:"verbose,v" desc:"debug logging"`
	Quiet    bool   `flag:"quiet" default:"true"`
	Untagged string
}

func TestFlagsFromParams(t *testing.T) {
	var params sampleParams
	flagSet := FlagsFromParams("sample", &params)

	if params.Mode != "remainder" {
		t.Errorf("Mode default = %q, want %q", params.Mode, "remainder")
	}
	if !params.Quiet {
		t.Error("Quiet default = false, want true")
	}

	if err := flagSet.Parse([]string{"-v", "--config=/tmp/c.yaml", "--mode", "token", "line"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !params.Verbose {
		t.Error("Verbose not set by -v")
	}
	if params.Config != "/tmp/c.yaml" || params.Mode != "token" {
		t.Errorf("params = %+v", params)
	}
	if args := flagSet.Args(); len(args) != 1 || args[0] != "line" {
		t.Errorf("Args = %q", args)
	}
	if flagSet.Lookup("Untagged") != nil {
		t.Error("untagged field was bound")
	}
}

func TestBindFlags_Errors(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)

	if err := BindFlags(sampleParams{}, flagSet); err == nil || !strings.Contains(err.Error(), "pointer to a struct") {
		t.Errorf("non-pointer: %v", err)
	}

	var unsupported struct {
		Count int `flag:"count"`
	}
	if err := BindFlags(&unsupported, flagSet); err == nil || !strings.Contains(err.Error(), "unsupported type int") {
		t.Errorf("unsupported type: %v", err)
	}

	var badDefault struct {
		On bool `flag:"on" default:"maybe"`
	}
	if err := BindFlags(&badDefault, flagSet); err == nil || !strings.Contains(err.Error(), "default for --on") {
		t.Errorf("bad default: %v", err)
	}
}
