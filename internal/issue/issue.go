// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies one documented issue.
type Id int

const (
	MalformedExpansionId Id = iota + 1
	AliasCycleId
	AliasDepthExceededId
	EmptyExpansionId
	ReservedAliasNameId
	ManifestInvalidId
)

// MarkdownMsg is the renderable body of an issue.
type MarkdownMsg string

// HttpLink points at documentation for an issue.
type HttpLink string

// Issue is one documented failure condition with a rendered explanation.
// Issues supplement terse errors in verbose mode; the error itself is
// always printed first.
type Issue struct {
	id       Id
	mdMsg    MarkdownMsg
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render returns the glamour-rendered explanation for terminal display.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- " + string(link) + "\n"
		}
	}
	return render(md, stylePath)
}

var render = func(in string, stylePath string) (string, error) {
	return glamour.Render(in, stylePath)
}

var (
	malformedExpansionIssue = &Issue{
		id: MalformedExpansionId,
		mdMsg: `
# Unterminated quote in alias expansion

The expansion text opens a quote that is never closed, so it cannot be
split into command words.

## Things you can try
- Close the quote:
~~~
$ devc alias set wi "workitem list --state 'In Progress'"
~~~
- Remember that single quotes keep everything literal, including
  backslashes and double quotes.`,
		docLinks: []HttpLink{"https://devc.dev/docs/aliases#quoting"},
	}

	aliasCycleIssue = &Issue{
		id: AliasCycleId,
		mdMsg: `
# Alias cycle detected

Expanding this alias eventually reaches itself again, which would loop
forever. The full chain is part of the error message.

## Things you can try
- Point the alias at real commands instead of at another alias in the
  chain:
~~~
$ devc alias set pl 'pipeline list'
~~~
- Inspect the chain with:
~~~
$ devc alias list
~~~`,
		docLinks: []HttpLink{"https://devc.dev/docs/aliases#cycles"},
	}

	aliasDepthExceededIssue = &Issue{
		id: AliasDepthExceededId,
		mdMsg: `
# Alias chain too deep

The alias expands through more than 32 other aliases. Chains this long
are almost always an accident.

## Things you can try
- Collapse intermediate aliases into one expansion.`,
		docLinks: []HttpLink{"https://devc.dev/docs/aliases#cycles"},
	}

	emptyExpansionIssue = &Issue{
		id: EmptyExpansionId,
		mdMsg: `
# Alias expands to nothing

The stored expansion contains no command words, so using the alias would
silently drop it from the command line.

## Things you can try
- Give the alias a real expansion:
~~~
$ devc alias set pl 'pipeline list'
~~~
- Or remove it:
~~~
$ devc alias remove pl
~~~`,
		docLinks: []HttpLink{"https://devc.dev/docs/aliases"},
	}

	reservedAliasNameIssue = &Issue{
		id: ReservedAliasNameId,
		mdMsg: `
# Alias name shadows a built-in command

The name is already taken by a command in the grammar, so the alias
could never be reached.

## Things you can try
- Pick a name that is not a root-level command:
~~~
$ devc alias list
$ devc commands --flat
~~~`,
		docLinks: []HttpLink{"https://devc.dev/docs/aliases#reserved-names"},
	}

	manifestInvalidIssue = &Issue{
		id: ManifestInvalidId,
		mdMsg: `
# Command manifest failed validation

The commands.cue override in your config directory does not satisfy the
manifest schema. The error message lists the offending fields.

## Things you can try
- Remove the override to fall back to the built-in grammar.
- Compare your file against the schema shipped with devc.`,
		docLinks: []HttpLink{"https://devc.dev/docs/completion#manifests"},
	}
)

var issues = map[Id]*Issue{
	MalformedExpansionId: malformedExpansionIssue,
	AliasCycleId:         aliasCycleIssue,
	AliasDepthExceededId: aliasDepthExceededIssue,
	EmptyExpansionId:     emptyExpansionIssue,
	ReservedAliasNameId:  reservedAliasNameIssue,
	ManifestInvalidId:    manifestInvalidIssue,
}

// Values returns all documented issues in id order.
func Values() []*Issue {
	all := maps.Values(issues)
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return all
}

// Get returns the issue for id, or nil when the id is not documented.
func Get(id Id) *Issue {
	return issues[id]
}
