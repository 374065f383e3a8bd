package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupProject writes a config pointing at a fresh sqlite file and
// initializes the database.
func setupProject(t *testing.T) (configPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	configPath = writeTestFile(t, dir, "hwrel.yaml", "project: test\n"+
		"hr_multiplier: 1000000\n"+
		"database:\n  driver: sqlite\n  path: "+filepath.Join(dir, "hwrel.db")+"\n"+
		"report:\n  dir: "+filepath.Join(dir, "reports")+"\n"+
		"stress_limits:\n  - category: 3\n    kind: power\n    harsh: 0.5\n    mild: 0.8\n")

	out := run(t, "db", "init", "-c", configPath)
	if !strings.Contains(out, "initialized successfully") {
		t.Fatalf("db init output: %s", out)
	}
	if !strings.Contains(out, "Seeded 1 stress limit overrides") {
		t.Errorf("db init output: %s", out)
	}
	return configPath, dir
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runErr(args...)
	if err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, out)
	}
	return out
}

func runErr(args ...string) (string, error) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func createFuse(t *testing.T, configPath, parent, refdes string) {
	t.Helper()
	run(t, "hardware", "create", "-c", configPath,
		"--name", "Fuse "+refdes, "--parent", parent, "--part", "--ref-des", refdes,
		"--category", "10", "--subcategory", "3",
		"--method", "1", "--env-active", "2", "--env-dormant", "2")
}

func TestWorkflow_CreateCalculateExport(t *testing.T) {
	configPath, dir := setupProject(t)

	out := run(t, "hardware", "create", "-c", configPath, "--name", "System", "--ref-des", "S1")
	if !strings.Contains(out, "Created assembly 1") {
		t.Fatalf("create output: %s", out)
	}
	run(t, "hardware", "create", "-c", configPath, "--name", "Board", "--parent", "1", "--ref-des", "A1")
	createFuse(t, configPath, "2", "F1")
	createFuse(t, configPath, "2", "F2")

	out = run(t, "hardware", "list", "-c", configPath)
	for _, want := range []string{"S1", "S1:A1", "S1:A1:F1", "S1:A1:F2", "misc"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q: %s", want, out)
		}
	}

	out = run(t, "hardware", "children", "-c", configPath, "2")
	if !strings.Contains(out, "Fuse F1") || !strings.Contains(out, "Fuse F2") {
		t.Errorf("children output: %s", out)
	}

	out = run(t, "calculate", "-c", configPath, "1")
	if !strings.Contains(out, "Calculated hardware 1 (4 items, 2 parts)") {
		t.Errorf("calculate output: %s", out)
	}
	if !strings.Contains(out, "0.04") {
		t.Errorf("expected active hazard rate 0.04, got: %s", out)
	}
	if !strings.Contains(out, "Messages (2):") {
		t.Errorf("expected two dormant messages, got: %s", out)
	}

	out = run(t, "hardware", "show", "-c", configPath, "3")
	if !strings.Contains(out, "Ref des:      S1:A1:F1") {
		t.Errorf("show output: %s", out)
	}
	if !strings.Contains(out, "Active HR:    0.02") {
		t.Errorf("show output: %s", out)
	}

	out = run(t, "runs", "-c", configPath, "1")
	if !strings.Contains(out, "cli") {
		t.Errorf("runs output: %s", out)
	}

	xlsx := filepath.Join(dir, "bom.xlsx")
	out = run(t, "export", "-c", configPath, "1", "-o", xlsx)
	if !strings.Contains(out, "Exported 4 items") {
		t.Errorf("export output: %s", out)
	}
	if info, err := os.Stat(xlsx); err != nil || info.Size() == 0 {
		t.Errorf("workbook not written: %v", err)
	}

	out = run(t, "export", "-c", configPath, "1", "--recalculate")
	if !strings.Contains(out, filepath.Join(dir, "reports")) {
		t.Errorf("expected report in report.dir, got: %s", out)
	}
}

func TestWorkflow_PartRejectsChildren(t *testing.T) {
	configPath, _ := setupProject(t)

	run(t, "hardware", "create", "-c", configPath, "--name", "System", "--ref-des", "S1")
	createFuse(t, configPath, "1", "F1")

	_, err := runErr("hardware", "create", "-c", configPath, "--name", "Board", "--parent", "2")
	if err == nil {
		t.Fatal("expected error creating an assembly under a part")
	}
	want := "ERROR: You can not have a hardware assembly as a child of a component/piece part."
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestWorkflow_UpdateMoveDelete(t *testing.T) {
	configPath, _ := setupProject(t)

	run(t, "hardware", "create", "-c", configPath, "--name", "System", "--ref-des", "S1")
	run(t, "hardware", "create", "-c", configPath, "--name", "Board 1", "--parent", "1", "--ref-des", "A1")
	run(t, "hardware", "create", "-c", configPath, "--name", "Board 2", "--parent", "1", "--ref-des", "A2")
	createFuse(t, configPath, "2", "F1")

	out := run(t, "hardware", "update", "-c", configPath, "4", "--set", "quantity=3", "--set", "reliability.quality_id=1")
	if !strings.Contains(out, "Updated hardware 4") {
		t.Errorf("update output: %s", out)
	}
	out = run(t, "hardware", "show", "-c", configPath, "4")
	if !strings.Contains(out, "Quantity:     3") {
		t.Errorf("show after update: %s", out)
	}

	run(t, "hardware", "move", "-c", configPath, "4", "3")
	out = run(t, "hardware", "show", "-c", configPath, "4")
	if !strings.Contains(out, "S1:A2:F1") {
		t.Errorf("show after move: %s", out)
	}

	if _, err := runErr("hardware", "move", "-c", configPath, "1", "3"); err == nil {
		t.Error("expected cycle error moving a root under its descendant")
	}

	run(t, "hardware", "update", "-c", configPath, "3", "--set", "ref_des=B2")
	run(t, "refdes", "-c", configPath, "1")
	out = run(t, "hardware", "show", "-c", configPath, "4")
	if !strings.Contains(out, "S1:B2:F1") {
		t.Errorf("show after refdes: %s", out)
	}

	out = run(t, "hardware", "delete", "-c", configPath, "3")
	if !strings.Contains(out, "Deleted 2 hardware items") {
		t.Errorf("delete output: %s", out)
	}
	if _, err := runErr("hardware", "show", "-c", configPath, "4"); err == nil {
		t.Error("expected not found after cascading delete")
	}
}

func TestWorkflow_MissingConfig(t *testing.T) {
	_, err := runErr("hardware", "list", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Errorf("error = %q", err)
	}
}
