// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withConfigDir points the package at a temp directory for one test.
// These tests share package state through the override, so none of them
// run in parallel.
func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetDirOverride(dir)
	t.Cleanup(func() { SetDirOverride("") })
	return dir
}

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	withConfigDir(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Aliases) != 0 {
		t.Errorf("default aliases = %v, want none", cfg.Aliases)
	}
	if cfg.UI.Verbose {
		t.Error("default verbose must be false")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := withConfigDir(t)

	in := &Config{
		Aliases: []Alias{
			{Name: "pl", Expansion: "pipeline list"},
			{Name: "pco", Expansion: "co --draft"},
		},
		UI: UIConfig{Verbose: true},
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(raw), "[[alias]]") {
		t.Errorf("config file missing alias tables:\n%s", raw)
	}

	out, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	table := out.AliasTable()
	if table["pl"] != "pipeline list" || table["pco"] != "co --draft" {
		t.Errorf("aliases round-trip = %v", out.Aliases)
	}
	if !out.UI.Verbose {
		t.Error("ui.verbose round-trip lost")
	}
}

// Alias names are case-sensitive. Storing them as table values rather
// than TOML keys keeps viper's key folding from rewriting them.
func TestSaveAndLoad_PreservesAliasNameCase(t *testing.T) {
	withConfigDir(t)

	in := Default()
	in.SetAlias("prList", "pr list --state open")
	if err := Save(in); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	out, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if out.AliasTable()["prList"] != "pr list --state open" {
		t.Errorf("mixed-case alias lost: %v", out.Aliases)
	}
}

func TestSetAndRemoveAlias(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.SetAlias("pl", "pipeline list")
	cfg.SetAlias("wi", "workitem list")
	cfg.SetAlias("pl", "pipeline list --org acme")

	if len(cfg.Aliases) != 2 {
		t.Fatalf("SetAlias duplicated an entry: %v", cfg.Aliases)
	}
	if cfg.AliasTable()["pl"] != "pipeline list --org acme" {
		t.Errorf("SetAlias did not replace in place: %v", cfg.Aliases)
	}

	expansion, ok := cfg.RemoveAlias("pl")
	if !ok || expansion != "pipeline list --org acme" {
		t.Errorf("RemoveAlias = (%q, %v)", expansion, ok)
	}
	if _, ok := cfg.RemoveAlias("pl"); ok {
		t.Error("RemoveAlias found a deleted entry")
	}
	if len(cfg.Aliases) != 1 {
		t.Errorf("remaining aliases = %v", cfg.Aliases)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	withConfigDir(t)

	path := filepath.Join(t.TempDir(), "custom.toml")
	content := "[[alias]]\nname = 'wi'\nexpansion = 'workitem list'\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if cfg.AliasTable()["wi"] != "workitem list" {
		t.Errorf("aliases = %v, want wi -> workitem list", cfg.Aliases)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := withConfigDir(t)

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("this is not toml ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(""); err == nil {
		t.Fatal("Load() accepted a malformed config file")
	}
}

func TestManifestPath(t *testing.T) {
	dir := withConfigDir(t)

	path, err := ManifestPath()
	if err != nil {
		t.Fatalf("ManifestPath() error: %v", err)
	}
	if path != filepath.Join(dir, "commands.cue") {
		t.Errorf("ManifestPath() = %q", path)
	}
}
