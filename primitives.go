//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import "fmt"

// Named is a builder for a named flag or option: a short name, a long
// name, or both, together with help text and an optional help group.
//
// Build one with [Short] or [Long] and chain further configuration, then
// call [Named.Flag] or [Named.Argument]/[Named.ArgumentString] to get a
// [Parser]. This mirrors the fluent style
// [github.com/bassosimone/flagparser]'s NewOptionWithArgumentNone and
// siblings use to build an [github.com/bassosimone/flagparser.Option].
type Named struct {
	short    rune
	hasShort bool
	long     string
	help     string
	group    string
}

// Short starts a [Named] builder with the given short name, e.g. Short('v').
func Short(c rune) Named {
	return Named{short: c, hasShort: true}
}

// Long starts a [Named] builder with the given long name, e.g. Long("verbose").
func Long(name string) Named {
	return Named{long: name}
}

// Short adds (or replaces) the short name on an existing [Named] builder.
func (n Named) Short(c rune) Named {
	n.short, n.hasShort = c, true
	return n
}

// Long adds (or replaces) the long name on an existing [Named] builder.
func (n Named) Long(name string) Named {
	n.long = name
	return n
}

// Help attaches help text shown in `--help` output.
func (n Named) Help(text string) Named {
	n.help = text
	return n
}

// Group clusters this flag/option under a shared heading in help output.
func (n Named) Group(name string) Named {
	n.group = name
	return n
}

// display renders the preferred textual form of the name, used in error
// messages: the long form if present, else the short form.
func (n Named) display() string {
	if n.long != "" {
		return "--" + n.long
	}
	if n.hasShort {
		return "-" + string(n.short)
	}
	return "<flag>"
}

// matches reports whether t is this named flag/option.
func (n Named) matches(t Token) bool {
	return (n.hasShort && t.isShort(n.short)) || (n.long != "" && t.isLong(n.long))
}

// Flag builds a primitive matching a named switch with no value
// (spec §4.3 take_flag). It consumes exactly the matching token and
// never an adjacent word.
func (n Named) Flag() Parser[Unit] {
	meta := metaFlag(n)
	return newParser(meta, func(b *ArgBuffer) (Unit, error) {
		idx, _, ok := b.find(n.matches)
		if !ok {
			return Unit{}, missing("flag not present")
		}
		b.Remove(idx)
		return Unit{}, nil
	})
}

// Argument builds a primitive matching a named option with a required
// value (spec §4.3 take_arg), returning the raw [Word] so callers that
// need the original OS bytes (e.g. for paths) are not forced through a
// textual decode.
func (n Named) Argument(placeholder string) Parser[Word] {
	meta := metaOption(n, placeholder)
	return newParser(meta, func(b *ArgBuffer) (Word, error) {
		idx, tok, ok := b.find(n.matches)
		if !ok {
			return Word{}, missing("flag not present")
		}
		nidx, ok := b.nextIndex(idx)
		if !ok {
			return Word{}, MissingValueError{Flag: tok.String()}
		}
		next := b.tokens[nidx]
		if next.Kind != TokenWord {
			return Word{}, MissingValueError{Flag: tok.String(), Got: next.String()}
		}
		b.Remove(idx)
		b.Remove(nidx)
		b.setCurrent(next.Word)
		return next.Word, nil
	})
}

// ArgumentString is [Named.Argument] post-processed to a decoded string,
// failing user-visibly when the value has no valid textual form.
func (n Named) ArgumentString(placeholder string) Parser[string] {
	return ParseWith(n.Argument(placeholder), func(w Word) (string, error) {
		if !w.HasText {
			return "", fmt.Errorf("value is not valid text")
		}
		return w.Text, nil
	})
}

// Positional builds a primitive matching the first remaining token when
// that token is a free-standing word (spec §4.3 take_positional_word); a
// flag in that position fails with [UnexpectedFlagError] and is not
// skipped over. placeholder is shown in usage output, e.g. "FILE".
func Positional(placeholder string) Parser[Word] {
	meta := metaPositional(placeholder, "")
	return newParser(meta, func(b *ArgBuffer) (Word, error) {
		tok, ok := b.Peek()
		if !ok {
			return Word{}, missing("flag not present")
		}
		if tok.Kind != TokenWord {
			return Word{}, UnexpectedFlagError{Flag: tok.String()}
		}
		idx, _ := b.nextIndex(noLeftmost)
		b.Remove(idx)
		b.setCurrent(tok.Word)
		return tok.Word, nil
	})
}

// PositionalString is [Positional] post-processed to a decoded string.
func PositionalString(placeholder string) Parser[string] {
	return ParseWith(Positional(placeholder), func(w Word) (string, error) {
		if !w.HasText {
			return "", fmt.Errorf("value is not valid text")
		}
		return w.Text, nil
	})
}

// Command builds a primitive matching a literal word and, on success,
// running inner against the remainder of the buffer (spec §4.7). If the
// literal matches but inner fails, the failure is always fatal: no
// sibling in an enclosing [Alt] is given a chance to recover, which is
// what lets `prog sub --help` report help for the subcommand rather than
// silently falling back to a different alternative.
//
// Before running inner, Command scans the remaining tokens for `--help`/
// `-h`; if found, it short-circuits with a [HelpRequested] error rendered
// from inner's own metadata, regardless of whether the rest of the
// subcommand's command line is otherwise valid (see the Open Question
// decision in DESIGN.md). If inner's own metadata already declares a
// `-h`/`--help` flag or option, that author-defined parser shadows this
// interception and inner runs normally instead.
func Command[T any](name string, inner Parser[T]) Parser[T] {
	meta := metaCommand(name, inner.meta, "")
	return newParser(meta, func(b *ArgBuffer) (T, error) {
		var zero T
		tok, ok := b.Peek()
		if !ok || tok.Kind != TokenWord || !tok.Word.HasText || tok.Word.Text != name {
			return zero, missing("flag not present")
		}
		idx, _ := b.nextIndex(noLeftmost)
		b.Remove(idx)

		if !isHelpShadowed(inner.meta) && scanHelp(b) {
			return zero, HelpRequested{Text: RenderHelp(inner.meta, Info{Description: inner.meta.Help})}
		}

		v, err := inner.run(b)
		if err != nil {
			if _, ok := err.(HelpRequested); ok {
				return zero, err
			}
			if _, ok := err.(VersionRequested); ok {
				return zero, err
			}
			if IsMissing(err) {
				return zero, userError("%s", err.Error())
			}
			return zero, err
		}
		return v, nil
	})
}

// scanHelp looks, without consuming anything, for a `-h`/`--help` token
// anywhere among the remaining tokens.
func scanHelp(b *ArgBuffer) bool {
	for i, ok := b.nextIndex(noLeftmost); ok; i, ok = b.nextIndex(i) {
		t := b.tokens[i]
		if t.isShort('h') || t.isLong("help") {
			return true
		}
	}
	return false
}

// scanVersion looks, without consuming anything, for a `--version` token
// anywhere among the remaining tokens.
func scanVersion(b *ArgBuffer) bool {
	for i, ok := b.nextIndex(noLeftmost); ok; i, ok = b.nextIndex(i) {
		if b.tokens[i].isLong("version") {
			return true
		}
	}
	return false
}
