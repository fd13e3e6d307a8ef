// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"devc-cli/internal/alias"
	"devc-cli/internal/config"
	"devc-cli/internal/issue"
	"devc-cli/internal/shlex"
	"devc-cli/internal/testutil"
)

func TestConfigFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		argv     []string
		expected string
	}{
		{name: "absent", argv: []string{"alias", "list"}, expected: ""},
		{name: "separate value", argv: []string{"--config", "/tmp/c.toml", "alias"}, expected: "/tmp/c.toml"},
		{name: "equals form", argv: []string{"--config=/tmp/c.toml"}, expected: "/tmp/c.toml"},
		{name: "trailing flag without value", argv: []string{"alias", "--config"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := configFlagValue(tt.argv); got != tt.expected {
				t.Errorf("configFlagValue(%v) = %q, want %q", tt.argv, got, tt.expected)
			}
		})
	}
}

func TestExpandArgv(t *testing.T) {
	dir := t.TempDir()
	config.SetDirOverride(dir)
	defer config.SetDirOverride("")

	testutil.MustWriteFile(t, filepath.Join(dir, "config.toml"), []byte(
		"[[alias]]\nname = 'pl'\nexpansion = 'pipeline list'\n\n"+
			"[[alias]]\nname = 'bad'\nexpansion = \"repo 'oops\"\n\n"+
			"[[alias]]\nname = 'loop'\nexpansion = 'loop'\n"))

	t.Run("expands leading alias", func(t *testing.T) {
		got, err := expandArgv([]string{"pl", "--status", "running"})
		if err != nil {
			t.Fatalf("expandArgv error: %v", err)
		}
		want := []string{"pipeline", "list", "--status", "running"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expandArgv = %v, want %v", got, want)
		}
	})

	t.Run("non-alias head is untouched", func(t *testing.T) {
		got, err := expandArgv([]string{"alias", "list"})
		if err != nil {
			t.Fatalf("expandArgv error: %v", err)
		}
		if !reflect.DeepEqual(got, []string{"alias", "list"}) {
			t.Errorf("expandArgv = %v", got)
		}
	})

	t.Run("empty argv passes through", func(t *testing.T) {
		got, err := expandArgv(nil)
		if err != nil || len(got) != 0 {
			t.Errorf("expandArgv(nil) = %v, %v", got, err)
		}
	})

	t.Run("cycle aborts dispatch", func(t *testing.T) {
		_, err := expandArgv([]string{"loop"})
		if !errors.Is(err, alias.ErrCycle) {
			t.Errorf("expandArgv(loop) error = %v, want ErrCycle", err)
		}
	})

	t.Run("malformed expansion surfaces at expansion time", func(t *testing.T) {
		_, err := expandArgv([]string{"bad"})
		if !errors.Is(err, shlex.ErrUnterminatedQuote) {
			t.Errorf("expandArgv(bad) error = %v, want ErrUnterminatedQuote", err)
		}
	})
}

func TestIssueFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		id   issue.Id
	}{
		{name: "cycle", err: &alias.CycleError{Name: "a"}, id: issue.AliasCycleId},
		{name: "depth", err: &alias.DepthExceededError{Name: "a", Depth: 32}, id: issue.AliasDepthExceededId},
		{name: "empty", err: &alias.EmptyExpansionError{Name: "a"}, id: issue.EmptyExpansionId},
		{name: "reserved", err: &alias.ReservedNameError{Name: "alias"}, id: issue.ReservedAliasNameId},
		{name: "quote", err: &shlex.UnterminatedQuoteError{Quote: '\''}, id: issue.MalformedExpansionId},
		{name: "wrapped", err: issue.WrapWithOperation(&alias.CycleError{Name: "a"}, "expand alias"), id: issue.AliasCycleId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := issueFor(tt.err)
			if doc == nil || doc.Id() != tt.id {
				t.Errorf("issueFor(%v) = %v, want issue %v", tt.err, doc, tt.id)
			}
		})
	}

	if issueFor(errors.New("unrelated")) != nil {
		t.Error("unrelated errors must not map to an issue")
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	if got := formatErrorForDisplay(plain, false); got != "boom" {
		t.Errorf("plain error display = %q", got)
	}

	ae := issue.WrapWithContext(&alias.ReservedNameError{Name: "alias"}, "set alias", "alias")
	got := formatErrorForDisplay(ae, false)
	if !strings.Contains(got, "failed to set alias") {
		t.Errorf("actionable error display = %q", got)
	}
}
