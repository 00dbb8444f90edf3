//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

// MetaKind discriminates the variants of a [Meta] node, the same way
// [github.com/bassosimone/flagparser]'s OptionType bitmask discriminates
// option kinds -- here as a plain enum, since metadata kinds are never
// combined the way early/standalone/groupable flags are.
type MetaKind int

const (
	// MetaFlag describes a named switch with no value.
	MetaFlag MetaKind = iota

	// MetaOption describes a named switch carrying a value.
	MetaOption

	// MetaPositional describes a free-standing, position-identified value.
	MetaPositional

	// MetaCommand describes a literal word selecting a nested parser.
	MetaCommand

	// MetaAnd describes a product of children (see [ConstructStruct2] and siblings).
	MetaAnd

	// MetaOr describes an alternative among children (see [Alt]).
	MetaOr

	// MetaDecorated describes a single child wrapped by a post-processing
	// combinator; see [Decoration].
	MetaDecorated
)

// Decoration identifies which post-processing combinator produced a
// [MetaDecorated] node.
type Decoration int

const (
	DecorationMany Decoration = iota
	DecorationSome
	DecorationOptional
	DecorationFallback
	DecorationMap
	DecorationParse
	DecorationGuard
)

// Meta is a parser's metadata, consumed by the help renderer (see
// [RenderUsage] and [RenderHelp]). Every [Parser] carries one alongside
// its run function; parents own children, so the tree can be walked
// recursively with no heap cycles.
type Meta struct {
	Kind MetaKind

	// Short and HasShort describe the short name of a flag/option.
	Short    rune
	HasShort bool

	// Long is the long name of a flag/option, empty if none.
	Long string

	// Placeholder is the value placeholder of an option/positional,
	// e.g. "FILE".
	Placeholder string

	// Help is the one-line (or multi-line) help text attached to this node.
	Help string

	// Group optionally clusters related flags/options under a shared
	// help heading.
	Group string

	// Name is the literal command word, valid only for MetaCommand.
	Name string

	// Children holds the sub-nodes of a MetaAnd or MetaOr node.
	Children []Meta

	// Inner holds the single wrapped node of a MetaCommand or
	// MetaDecorated node.
	Inner *Meta

	// Decoration identifies the wrapping combinator of a MetaDecorated node.
	Decoration Decoration
}

func metaFlag(n Named) Meta {
	return Meta{Kind: MetaFlag, Short: n.short, HasShort: n.hasShort, Long: n.long, Help: n.help, Group: n.group}
}

func metaOption(n Named, placeholder string) Meta {
	return Meta{Kind: MetaOption, Short: n.short, HasShort: n.hasShort, Long: n.long, Placeholder: placeholder, Help: n.help, Group: n.group}
}

func metaPositional(placeholder, help string) Meta {
	return Meta{Kind: MetaPositional, Placeholder: placeholder, Help: help}
}

func metaCommand(name string, inner Meta, help string) Meta {
	return Meta{Kind: MetaCommand, Name: name, Inner: &inner, Help: help}
}

func metaAnd(children ...Meta) Meta {
	return Meta{Kind: MetaAnd, Children: children}
}

func metaOr(children ...Meta) Meta {
	return Meta{Kind: MetaOr, Children: children}
}

func metaDecorated(inner Meta, d Decoration) Meta {
	return Meta{Kind: MetaDecorated, Inner: &inner, Decoration: d}
}

// requiredName derives the name used by the "argument X is required"
// promotion error (spec §4.5): prefer the long name, else the short
// name, else the placeholder.
func (m Meta) requiredName() string {
	switch m.Kind {
	case MetaFlag, MetaOption:
		if m.Long != "" {
			return "--" + m.Long
		}
		if m.HasShort {
			return "-" + string(m.Short)
		}
	case MetaPositional:
		if m.Placeholder != "" {
			return m.Placeholder
		}
	case MetaCommand:
		return m.Name
	case MetaDecorated:
		if m.Inner != nil {
			return m.Inner.requiredName()
		}
	}
	if m.Placeholder != "" {
		return m.Placeholder
	}
	return "<value>"
}
