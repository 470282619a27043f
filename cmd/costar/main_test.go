package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func findCommand(t *testing.T, root *cobra.Command, names ...string) *cobra.Command {
	t.Helper()
	cmd := root
	for _, name := range names {
		var next *cobra.Command
		for _, child := range cmd.Commands() {
			if child.Name() == name {
				next = child
				break
			}
		}
		if next == nil {
			t.Fatalf("command %q not registered under %q", name, cmd.Name())
		}
		cmd = next
	}
	return cmd
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	findCommand(t, root, "compare")
	findCommand(t, root, "datasets", "fetch")
	findCommand(t, root, "datasets", "status")
	findCommand(t, root, "datasets", "clear")
	findCommand(t, root, "config", "init")
	findCommand(t, root, "config", "validate")
}

func TestCompareArgsRejectSingleActor(t *testing.T) {
	root := newRootCommand()
	compare := findCommand(t, root, "compare")

	if err := compare.Args(compare, []string{"Bill Murray"}); err == nil {
		t.Error("expected error for a single actor name")
	}
	if err := compare.Args(compare, []string{"A", "B", "C"}); err == nil {
		t.Error("expected error for three actor names")
	}
	if err := compare.Args(compare, nil); err != nil {
		t.Errorf("no arguments should be accepted: %v", err)
	}
	if err := compare.Args(compare, []string{"A", "B"}); err != nil {
		t.Errorf("two arguments should be accepted: %v", err)
	}
}

func TestShouldSkipConfigForConfigSubcommands(t *testing.T) {
	root := newRootCommand()

	if !shouldSkipConfig(findCommand(t, root, "config", "init")) {
		t.Error("config init should skip config loading")
	}
	if !shouldSkipConfig(findCommand(t, root, "config", "validate")) {
		t.Error("config validate should skip config loading")
	}
	if shouldSkipConfig(findCommand(t, root, "compare")) {
		t.Error("compare must load configuration")
	}
	if shouldSkipConfig(findCommand(t, root, "datasets", "status")) {
		t.Error("datasets status must load configuration")
	}
}

func TestColorEnabledModes(t *testing.T) {
	if !colorEnabled("always", os.Stdout) {
		t.Error("always should force color on")
	}
	if colorEnabled("never", os.Stdout) {
		t.Error("never should force color off")
	}
	// Test output is never a terminal, so auto resolves to off here.
	if colorEnabled("auto", os.Stdout) {
		t.Error("auto should disable color without a terminal")
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	root := newRootCommand()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"config", "init", "--path", target})

	if err := root.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("sample config not written: %v", err)
	}
	if !strings.Contains(string(data), "[compare]") {
		t.Errorf("sample config missing [compare] section:\n%s", data)
	}
	if !strings.Contains(out.String(), target) {
		t.Errorf("init output should name the written path, got %q", out.String())
	}
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newRootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"config", "init", "--path", target})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error when target exists")
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "existing" {
		t.Error("existing file was overwritten without --overwrite")
	}
}

func TestConfigValidateWithExplicitPath(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	content := "[compare]\nactor_a = \"Cary Grant\"\nactor_b = \"Katharine Hepburn\"\n"
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newRootCommand()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"config", "validate", "--path", target})

	if err := root.Execute(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out.String(), "is valid") {
		t.Errorf("validate output unexpected: %q", out.String())
	}
}

func TestConfigValidateRejectsBadConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	content := "[output]\ncolor = \"sometimes\"\n"
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newRootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"config", "validate", "--path", target})

	if err := root.Execute(); err == nil {
		t.Fatal("expected validation error for bad color mode")
	}
}
