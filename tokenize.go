//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bassosimone/flagscanner"
)

// Tokenize preprocesses a raw argument vector (which MUST NOT include the
// program name) into the token sequence an [ArgBuffer] is built from.
//
// The heavy lifting -- recognizing the `--` separator and toggling every
// subsequent argument to a positional, regardless of its prefix -- is
// delegated to [flagscanner.Scanner], configured with the GNU `-`/`--`
// prefixes. This function performs the second pass flagscanner leaves to
// its caller: splitting a `--name=value` or `-k=v` option on its first
// `=`, and exploding a prefix-less-of-`=` short option into one token per
// rune so that `-xyz` behaves as three flags (`-x -y -z`).
//
// Any argument that does not decode to valid text is never interpreted as
// a flag, regardless of the bytes it happens to start with: it is always
// emitted as a [TokenWord] carrying its raw OS bytes.
func Tokenize(args []string) []Token {
	scanner := &flagscanner.Scanner{
		Prefixes:  []string{"-", "--"},
		Separator: "--",
	}
	raw := scanner.Scan(args)

	out := make([]Token, 0, len(raw))
	for _, tok := range raw {
		idx := tok.Index()
		if idx >= 0 && idx < len(args) && !utf8.ValidString(args[idx]) {
			out = append(out, wordToken(args[idx], "", false))
			continue
		}
		switch tok := tok.(type) {
		case flagscanner.OptionsArgumentsSeparatorToken:
			// Rule 3: the separator itself contributes no token.
			continue

		case flagscanner.PositionalArgumentToken:
			out = append(out, wordToken(tok.Value, tok.Value, true))

		case flagscanner.OptionToken:
			out = append(out, splitOption(tok)...)

		default:
			panic(fmt.Sprintf("combinator: unhandled scanner token: %#v", tok))
		}
	}
	return out
}

// splitOption implements the per-prefix splitting described by spec rules
// 4 and 5: long options split once on `=`; short options either split on
// `=` (requiring a single-character key) or explode into one token per
// rune in the cluster.
func splitOption(tok flagscanner.OptionToken) []Token {
	switch tok.Prefix {
	case "--":
		if idx := strings.IndexByte(tok.Name, '='); idx >= 0 {
			key, value := tok.Name[:idx], tok.Name[idx+1:]
			return []Token{longToken(key), wordToken(value, value, true)}
		}
		return []Token{longToken(tok.Name)}

	case "-":
		if idx := strings.IndexByte(tok.Name, '='); idx >= 0 {
			key, value := tok.Name[:idx], tok.Name[idx+1:]
			if utf8.RuneCountInString(key) != 1 {
				panic(fmt.Sprintf("combinator: malformed short option %q: key must be a single character", tok.String()))
			}
			r, _ := utf8.DecodeRuneInString(key)
			return []Token{shortToken(r), wordToken(value, value, true)}
		}
		out := make([]Token, 0, len(tok.Name))
		for _, r := range tok.Name {
			out = append(out, shortToken(r))
		}
		return out

	default:
		panic(fmt.Sprintf("combinator: unexpected option prefix %q", tok.Prefix))
	}
}
