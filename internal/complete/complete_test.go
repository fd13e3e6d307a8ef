// SPDX-License-Identifier: MPL-2.0

package complete

import (
	"reflect"
	"testing"

	"devc-cli/internal/cmdtree"
)

// fixtureTree mirrors the grammar shapes the resolver contract is written
// against: prefix-overlapping root commands plus nested value-taking flags.
func fixtureTree() *cmdtree.Node {
	return &cmdtree.Node{
		Name: "devc",
		Options: []cmdtree.Option{
			{Long: "--help", Short: "-h"},
		},
		Children: []*cmdtree.Node{
			{Name: "alias"},
			{Name: "api"},
			{Name: "auth"},
			{
				Name: "org",
				Children: []*cmdtree.Node{
					{
						Name: "members",
						Options: []cmdtree.Option{
							{Long: "--org", TakesValue: true},
							{Long: "--role", Short: "-r", TakesValue: true},
						},
					},
				},
			},
			{
				Name:    "repo",
				Aliases: []string{"r"},
				Options: []cmdtree.Option{
					{Long: "--limit", Short: "-L", TakesValue: true},
					{Long: "--web"},
				},
			},
		},
	}
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		words    []string
		expected []string
	}{
		{
			name:     "empty query offers everything at root",
			words:    nil,
			expected: []string{"--help", "-h", "alias", "api", "auth", "org", "r", "repo"},
		},
		{
			name:     "prefix filters root children",
			words:    []string{"a"},
			expected: []string{"alias", "api", "auth"},
		},
		{
			name:     "longer prefix narrows to one",
			words:    []string{"al"},
			expected: []string{"alias"},
		},
		{
			name:     "dash prefix offers only options",
			words:    []string{"-"},
			expected: []string{"--help", "-h"},
		},
		{
			name:     "double dash prefix filters to long options",
			words:    []string{"--"},
			expected: []string{"--help"},
		},
		{
			name:     "descends into subcommands",
			words:    []string{"org", ""},
			expected: []string{"members"},
		},
		{
			name:     "options of the located node",
			words:    []string{"org", "members", "--"},
			expected: []string{"--org", "--role"},
		},
		{
			name:     "no candidates while expecting an option value",
			words:    []string{"org", "members", "--org", ""},
			expected: nil,
		},
		{
			name:     "value consumed then options offered again",
			words:    []string{"org", "members", "--org", "acme", "--"},
			expected: []string{"--org", "--role"},
		},
		{
			name:     "embedded value never blocks completion",
			words:    []string{"org", "members", "--org=acme", "--"},
			expected: []string{"--org", "--role"},
		},
		{
			name:     "unknown tokens degrade to the root candidate set",
			words:    []string{"nonexistent", "also-nonexistent", ""},
			expected: []string{"--help", "-h", "alias", "api", "auth", "org", "r", "repo"},
		},
		{
			name:     "no match yields empty, not error",
			words:    []string{"zzz"},
			expected: nil,
		},
		{
			name:     "prefix longer than an alias filters the alias out",
			words:    []string{"re"},
			expected: []string{"repo"},
		},
		{
			name:     "tokens after double dash keep offering the stopped node",
			words:    []string{"repo", "--", "anything", ""},
			expected: []string{"--limit", "--web", "-L"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Candidates(fixtureTree(), tt.words)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Candidates(%v) = %v, want %v", tt.words, got, tt.expected)
			}
		})
	}
}

func TestCandidates_Deterministic(t *testing.T) {
	t.Parallel()

	first := Candidates(fixtureTree(), []string{"a"})
	for i := 0; i < 10; i++ {
		if got := Candidates(fixtureTree(), []string{"a"}); !reflect.DeepEqual(got, first) {
			t.Fatalf("iteration %d: Candidates returned %v, previously %v", i, got, first)
		}
	}
}
