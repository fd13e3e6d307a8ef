// SPDX-License-Identifier: MPL-2.0

package cueutil_test

import (
	"strings"
	"testing"

	"devc-cli/internal/cueutil"
)

const testSchema = `
#Entry: {
	name:  string & =~"^[a-z]+$"
	count: int | *1
}

#Doc: {
	entries: [...#Entry]
}
`

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type doc struct {
	Entries []entry `json:"entries"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	data := []byte(`entries: [{name: "alpha"}, {name: "beta", count: 3}]`)
	got, err := cueutil.ParseAndDecode[doc]([]byte(testSchema), data, "#Doc", "test.cue")
	if err != nil {
		t.Fatalf("ParseAndDecode error: %v", err)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(got.Entries))
	}
	if got.Entries[0].Count != 1 {
		t.Errorf("schema default not applied: %+v", got.Entries[0])
	}
	if got.Entries[1].Name != "beta" || got.Entries[1].Count != 3 {
		t.Errorf("entry decode = %+v", got.Entries[1])
	}
}

func TestParseAndDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{
			name:    "schema violation names the path",
			data:    `entries: [{name: "NotLower"}]`,
			wantSub: "entries[0].name",
		},
		{
			name:    "syntax error names the file",
			data:    `entries: [`,
			wantSub: "test.cue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cueutil.ParseAndDecode[doc]([]byte(testSchema), []byte(tt.data), "#Doc", "test.cue")
			if err == nil {
				t.Fatalf("ParseAndDecode(%q) expected error", tt.data)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q missing %q", err.Error(), tt.wantSub)
			}
		})
	}
}
