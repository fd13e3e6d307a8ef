// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	_ "embed"
	"fmt"
	"os"

	"devc-cli/internal/cueutil"
)

//go:embed manifest_schema.cue
var manifestSchema []byte

//go:embed manifest.cue
var defaultManifest []byte

// ManifestFileName is the user override file, resolved under the config
// directory. When present it replaces the embedded grammar entirely.
const ManifestFileName = "commands.cue"

type (
	// manifestFlag mirrors #Flag in the manifest schema.
	manifestFlag struct {
		Long       string `json:"long"`
		Short      string `json:"short,omitempty"`
		TakesValue bool   `json:"takesValue"`
	}

	// manifestCommand mirrors #Command in the manifest schema.
	manifestCommand struct {
		Name     string            `json:"name"`
		Aliases  []string          `json:"aliases,omitempty"`
		Flags    []manifestFlag    `json:"flags,omitempty"`
		Commands []manifestCommand `json:"commands,omitempty"`
	}

	// manifest mirrors #Manifest in the manifest schema.
	manifest struct {
		Commands []manifestCommand `json:"commands"`
		Flags    []manifestFlag    `json:"flags,omitempty"`
	}
)

// LoadManifest parses a CUE grammar manifest, validates it against the
// embedded schema, and builds the grammar tree rooted at a node named root.
func LoadManifest(data []byte, filename, root string) (*Node, error) {
	m, err := cueutil.ParseAndDecode[manifest](manifestSchema, data, "#Manifest", filename)
	if err != nil {
		return nil, err
	}

	tree := &Node{Name: root, Options: optionsOf(m.Flags)}
	for _, c := range m.Commands {
		tree.Children = append(tree.Children, nodeOf(c))
	}
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return tree, nil
}

// DefaultGrammar builds the tree from the embedded manifest.
func DefaultGrammar(root string) (*Node, error) {
	return LoadManifest(defaultManifest, "manifest.cue (embedded)", root)
}

// GrammarFromFile loads path when it exists, falling back to the embedded
// manifest otherwise.
func GrammarFromFile(path, root string) (*Node, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultGrammar(root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read command manifest: %w", err)
	}
	return LoadManifest(data, path, root)
}

func nodeOf(c manifestCommand) *Node {
	n := &Node{
		Name:    c.Name,
		Aliases: c.Aliases,
		Options: optionsOf(c.Flags),
	}
	for _, sub := range c.Commands {
		n.Children = append(n.Children, nodeOf(sub))
	}
	return n
}

func optionsOf(flags []manifestFlag) []Option {
	var opts []Option
	for _, f := range flags {
		opts = append(opts, Option{Long: f.Long, Short: f.Short, TakesValue: f.TakesValue})
	}
	return opts
}
