package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestHardwareCmd_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"hardware", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("hardware --help failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Hardware BoM management") {
		t.Errorf("expected help to mention 'Hardware BoM management', got: %s", out)
	}
	for _, sub := range []string{"create", "list", "show", "update", "delete", "children", "move"} {
		if !strings.Contains(out, sub) {
			t.Errorf("expected help to list %q subcommand, got: %s", sub, out)
		}
	}
}

func TestNewHardwareCmd(t *testing.T) {
	cmd := newHardwareCmd()
	if cmd.Use != "hardware" {
		t.Errorf("Use = %q, want %q", cmd.Use, "hardware")
	}
	if !cmd.HasSubCommands() {
		t.Error("hardware command should have subcommands")
	}
	if len(cmd.Aliases) == 0 || cmd.Aliases[0] != "hw" {
		t.Errorf("Aliases = %v, want [hw]", cmd.Aliases)
	}
}

func TestHardwareCreateCmd_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"hardware", "create", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("hardware create --help failed: %v", err)
	}

	out := buf.String()
	for _, flag := range []string{"--name", "--parent", "--part", "--ref-des", "--category", "--subcategory", "--method", "--env-active", "--config"} {
		if !strings.Contains(out, flag) {
			t.Errorf("expected %s flag, got: %s", flag, out)
		}
	}
}

func TestNewHardwareCreateCmd(t *testing.T) {
	cmd := newHardwareCreateCmd()
	if cmd.Use != "create" {
		t.Errorf("Use = %q, want %q", cmd.Use, "create")
	}

	flag := cmd.Flags().Lookup("name")
	if flag == nil {
		t.Fatal("expected --name flag")
	}
	if ann := flag.Annotations["cobra_annotation_bash_completion_one_required_flag"]; len(ann) == 0 {
		t.Error("--name should be required")
	}

	tests := map[string]string{
		"quantity":   "1",
		"duty-cycle": "100",
		"cost-type":  "2",
		"method":     "1",
		"hr-type":    "1",
	}
	for name, want := range tests {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Errorf("expected --%s flag", name)
			continue
		}
		if f.DefValue != want {
			t.Errorf("--%s default = %q, want %q", name, f.DefValue, want)
		}
	}
}

func TestHardwareUpdateCmd_RequiresSet(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"hardware", "update", "1"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error without --set")
	}
	if !strings.Contains(err.Error(), "--set") {
		t.Errorf("error = %q, want mention of --set", err)
	}
}

func TestHardwareMoveCmd_Args(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"hardware", "move", "1"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error with one argument")
	}
}

func TestHardwareShowCmd_InvalidID(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"hardware", "show", "abc"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	if !strings.Contains(err.Error(), `invalid hardware id "abc"`) {
		t.Errorf("error = %q", err)
	}
}
