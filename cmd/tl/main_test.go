package main

import (
	"strings"
	"testing"
)

func TestVersionString(t *testing.T) {
	if got := versionString(); !strings.Contains(got, "taskline") {
		t.Errorf("unexpected version string: %q", got)
	}
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestParseID(t *testing.T) {
	valid := map[string]int{"1": 1, " 42 ": 42}
	for input, want := range valid {
		got, err := parseID(input)
		if err != nil {
			t.Errorf("parseID(%q) unexpected error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("parseID(%q) = %d, want %d", input, got, want)
		}
	}

	for _, input := range []string{"", "abc", "0", "-3", "1.5"} {
		if _, err := parseID(input); err == nil {
			t.Errorf("parseID(%q) should fail", input)
		}
	}
}

func TestRootCommandSurface(t *testing.T) {
	want := []string{
		"add", "list", "update", "remove", "remove-all", "search",
		"detail", "complete", "tag", "untag", "due", "stats", "overdue",
	}
	have := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing command %q", name)
		}
	}
}
