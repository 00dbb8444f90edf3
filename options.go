//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

// Info carries the program-level metadata [Options] attaches to a
// top-level parser: the description/header/footer shown in `--help`
// output and the version string shown by `--version`.
type Info struct {
	// Description is the one-line (or multi-line) summary shown first.
	Description string

	// Header is shown after Description, before the usage synopsis.
	Header string

	// Footer is shown at the very end of the help body.
	Footer string

	// Version is printed by `--version`. Leave empty to disable
	// `--version` handling entirely.
	Version string
}

// HelpRequested is returned by a parser built with [Options] (or by
// [Command], for its own subcommand) when `--help`/`-h` was found among
// the remaining tokens. Text holds the fully rendered help body.
//
// This mirrors the standard library's own `flag.ErrHelp` sentinel: a
// typed error the driver recognizes and treats as a distinguished
// outcome rather than a failure.
type HelpRequested struct {
	Text string
}

var _ error = HelpRequested{}

// Error implements error.
func (h HelpRequested) Error() string {
	return "help requested"
}

// VersionRequested is returned by a parser built with [Options] when
// `--version` was found among the remaining tokens and [Info.Version] is
// non-empty.
type VersionRequested struct {
	Text string
}

var _ error = VersionRequested{}

// Error implements error.
func (v VersionRequested) Error() string {
	return "version requested"
}

// Options attaches info to p, producing a runnable top-level parser
// (spec §4.8). The result first scans its remaining tokens for
// `--help`/`-h`, and, when info.Version is set, `--version`; either
// short-circuits with [HelpRequested] or [VersionRequested] before p
// ever runs. If p's own metadata already declares a `-h`/`--help`
// flag or option, that author-defined parser shadows the automatic
// `--help` interception and is left to run normally. Otherwise it
// runs p and, if any tokens remain afterward, fails with
// [UnexpectedArgumentError].
func Options[T any](p Parser[T], info Info) Parser[T] {
	meta := p.meta
	return newParser(meta, func(b *ArgBuffer) (T, error) {
		var zero T

		if !isHelpShadowed(meta) && scanHelp(b) {
			return zero, HelpRequested{Text: RenderHelp(meta, info)}
		}
		if info.Version != "" && scanVersion(b) {
			return zero, VersionRequested{Text: info.Version}
		}

		v, err := p.run(b)
		if err != nil {
			if IsMissing(err) {
				return zero, userError("%s", err.Error())
			}
			return zero, err
		}

		if !b.IsEmpty() {
			tok, _ := b.Peek()
			return zero, UnexpectedArgumentError{Token: tok.String()}
		}
		return v, nil
	})
}
