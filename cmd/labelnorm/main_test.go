package main

import (
	"bytes"
	"strings"
	"testing"
)

// runCLI executes the root command with the given arguments and returns
// captured stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestRootCommandListsSubcommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out, err := runCLI(t, "--help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, name := range []string{"run", "check", "aliases", "config"} {
		requireContains(t, out, name)
	}
}

func TestAliasesCommandShowsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out, err := runCLI(t, "aliases")
	if err != nil {
		t.Fatalf("aliases: %v", err)
	}
	requireContains(t, out, "damaged_roof")
	requireContains(t, out, "damagedroof")
}
