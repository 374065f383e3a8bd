package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestPredictCmd_Fuse(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "fuse.yaml", `
hardware_id: 7
category_id: 10
subcategory_id: 3
hazard_rate_method_id: 1
environment_active_id: 2
environment_dormant_id: 2
quantity: 1
duty_cycle: 100
mult_adj_factor: 1
`)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"predict", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("predict failed: %v\n%s", err, buf.String())
	}

	out := buf.String()
	if !strings.Contains(out, "Part: fuse") {
		t.Errorf("expected kind in output, got: %s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == "hazard_rate_active" {
			if fields[1] != "0.02" {
				t.Errorf("hazard_rate_active = %s, want 0.02", fields[1])
			}
			return
		}
	}
	t.Errorf("hazard_rate_active missing from output: %s", out)
}

func TestPredictCmd_UnknownField(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "bad.yaml", "category_id: 10\nnot_a_field: 1\n")

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"predict", path})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error = %q, want parse error", err)
	}
}

func TestPredictCmd_MissingFile(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"predict", filepath.Join(t.TempDir(), "missing.yaml")})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPredictCmd_UnknownPartDoesNotFail(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "unknown.yaml", "category_id: 99\nsubcategory_id: 1\n")

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"predict", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	if !strings.Contains(buf.String(), "hazard_rate_active") {
		t.Errorf("expected hazard rates in output, got: %s", buf.String())
	}
}

func TestReadAttributes_Empty(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "empty.yaml", "")
	a, err := readAttributes(path)
	if err != nil {
		t.Fatalf("readAttributes: %v", err)
	}
	if a.CategoryID != 0 {
		t.Errorf("CategoryID = %d, want 0", a.CategoryID)
	}
}
