package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"search", "render", "export", "version"} {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "cite "+version) {
		t.Errorf("output = %q", out.String())
	}
}
