// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testYAML = `name: clitest
input_size: 20
output_size: 4
npats: 2
mean: 200
inp_duration: 10
epochs: 2
print_details: false
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "wta.yaml")
	if err := os.WriteFile(fn, []byte(testYAML), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestGenCmd(t *testing.T) {
	out, err := execute(t, "gen", "--config", writeTestConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	lns := strings.Split(strings.TrimSpace(out), "\n")
	if len(lns) != 3 {
		t.Errorf("gen lines: %v != 3\n%s\n", len(lns), out)
	}
	if !strings.Contains(out, "Pat1") {
		t.Errorf("gen output missing Pat1:\n%s\n", out)
	}
}

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "runs.db")
	out, err := execute(t, "run", "--config", writeTestConfig(t), "--runs", "2", "--threads", "2", "--db", db, "--out", dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"Run: 1", "pattern: 1", "Distinct:", "Stored: 2 runs of clitest"} {
		if !strings.Contains(out, s) {
			t.Errorf("run output missing %q:\n%s\n", s, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "clitest_config.yaml")); err != nil {
		t.Errorf("config not saved: %v\n", err)
	}

	out, err = execute(t, "run", "--config", writeTestConfig(t), "--db", db, "-q")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "Run: 0") {
		t.Errorf("quiet run printed run summary:\n%s\n", out)
	}
	if !strings.Contains(out, "Stored: 3 runs") {
		t.Errorf("second run not added to db:\n%s\n", out)
	}
}

func TestRunCmdBadParams(t *testing.T) {
	if _, err := execute(t, "run", "--config", writeTestConfig(t), "--params", "NoSuchSet"); err == nil {
		t.Errorf("expected error for unknown param set\n")
	}
	if _, err := execute(t, "run", "--config", writeTestConfig(t), "--threads", "0"); err == nil {
		t.Errorf("expected error for 0 threads\n")
	}
}

func TestInfoCmd(t *testing.T) {
	out, err := execute(t, "info", "--config", writeTestConfig(t), "--params", "StrongLat")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"Neurons: 20", "Iterations per run: 40", "Lateral.Coef=4"} {
		if !strings.Contains(out, s) {
			t.Errorf("info output missing %q:\n%s\n", s, out)
		}
	}
}
