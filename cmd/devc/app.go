// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"
	"sync"

	"devc-cli/internal/alias"
	"devc-cli/internal/cmdtree"
	"devc-cli/internal/config"

	"github.com/spf13/cobra"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: command handlers receive an App reference and
	// reach config and the command grammar through its interfaces.
	App struct {
		Config  ConfigProvider
		Grammar GrammarService
		stdout  io.Writer
		stderr  io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp; tests supply
	// fakes to isolate command behavior.
	Dependencies struct {
		Config  ConfigProvider
		Grammar GrammarService
		Stdout  io.Writer
		Stderr  io.Writer
	}

	// ConfigProvider loads and persists the devc configuration.
	ConfigProvider interface {
		Load(explicitPath string) (*config.Config, error)
		Save(cfg *config.Config) error
	}

	// GrammarService builds the command tree the resolver walks: the
	// platform grammar (manifest) merged with a mirror of devc's own
	// registered commands. The tree is built once per invocation.
	GrammarService interface {
		Tree() (*cmdtree.Node, error)
		// Reserved returns the names an alias may not shadow: every
		// root-level command name and alias of the merged tree.
		Reserved() (alias.ReservedNames, error)
	}
)

// NewApp builds an App, substituting production defaults for nil fields.
func NewApp(deps Dependencies) *App {
	a := &App{
		Config:  deps.Config,
		Grammar: deps.Grammar,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}
	if a.Config == nil {
		a.Config = fileConfigProvider{}
	}
	if a.Grammar == nil {
		a.Grammar = &mergedGrammar{root: rootCmd}
	}
	if a.stdout == nil {
		a.stdout = os.Stdout
	}
	if a.stderr == nil {
		a.stderr = os.Stderr
	}
	return a
}

// Stdout returns the writer command handlers print results to.
func (a *App) Stdout() io.Writer { return a.stdout }

// Stderr returns the writer command handlers print diagnostics to.
func (a *App) Stderr() io.Writer { return a.stderr }

// fileConfigProvider is the production ConfigProvider backed by the platform
// config directory.
type fileConfigProvider struct{}

func (fileConfigProvider) Load(explicitPath string) (*config.Config, error) {
	return config.Load(explicitPath)
}

func (fileConfigProvider) Save(cfg *config.Config) error {
	return config.Save(cfg)
}

// mergedGrammar builds the completion tree lazily and caches it for the rest
// of the invocation: platform manifest (user override or embedded) grafted
// with a mirror of the registered cobra commands.
type mergedGrammar struct {
	root *cobra.Command

	once sync.Once
	tree *cmdtree.Node
	err  error
}

func (g *mergedGrammar) Tree() (*cmdtree.Node, error) {
	g.once.Do(func() {
		manifestPath, err := config.ManifestPath()
		if err != nil {
			g.err = err
			return
		}
		tree, err := cmdtree.GrammarFromFile(manifestPath, g.root.Name())
		if err != nil {
			g.err = err
			return
		}
		if err := cmdtree.Merge(tree, cmdtree.FromCommand(g.root)); err != nil {
			g.err = err
			return
		}
		g.tree = tree
	})
	return g.tree, g.err
}

func (g *mergedGrammar) Reserved() (alias.ReservedNames, error) {
	tree, err := g.Tree()
	if err != nil {
		return nil, err
	}
	// Hidden commands are invisible to completion but still dispatch, so
	// their names are reserved too; otherwise an alias named after the
	// completion endpoint would hijack every shell completion query.
	names := append(tree.ChildNames(), cmdtree.HiddenNames(g.root)...)
	return alias.NewReservedNames(names...), nil
}
