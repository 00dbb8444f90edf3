//
// SPDX-License-Identifier: GPL-3.0-or-later
//

/*
Package combinator implements a command line argument parser built from
small, composable parser combinators.

Rather than describing a command line with a flat list of options (as
[github.com/bassosimone/flagparser] does), you build a [Parser] for the
value you want out of primitive parsers -- [Short], [Long], [Positional],
[Command] -- and combine them with product, sum, and mapping operations:

 1. [ConstructStruct2] (and its higher-arity siblings up to
    [ConstructStruct6]) combine several parsers into one that succeeds
    only when every child succeeds, regardless of the order the
    corresponding flags appear on the command line.

 2. [Alt] picks the branch, among those that succeeded, whose consumed
    tokens start earliest in the command line. This is what makes
    subcommand dispatch and "flag A or flag B" alternatives behave
    intuitively.

 3. [Map], [ParseWith], [Guard], [Optional], [Many], [Some], and
    [Fallback] post-process a parser's result or adjust how a missing
    value is handled.

To parse a command line, you:

 1. Build a [Parser][T] for your target type T using the primitives and
    combinators above.

 2. Optionally attach program metadata with [Options] to get version
    and `--help` handling for free.

 3. Call [Run] (for a real process) or [RunInner] (in tests) with the
    raw argument vector.

# Recoverable vs. Fatal Failures

Every parser failure is one of two kinds:

 1. [MissingError]: the parser's target was simply absent. [Optional],
    [Many], [Some], [Fallback], and [Alt] all treat this as something
    they are allowed to recover from.

 2. [UserError] (and the more specific, separate error types alongside
    it, such as [MissingValueError] and [ParseValueError]): the parser's
    target was present but invalid. No combinator swallows this; it
    always reaches the driver.

# Help and Version

[Options] wraps a [Parser][T] with program-level [Info] and intercepts
`--help`/`-h` and, when a version string is set, `--version` before
running the wrapped parser, mirroring how
[github.com/bassosimone/flagparser]'s early options short-circuit
ordinary parsing for `--help`.

# Example

Consider a program accepting a required `--speed` option, a repeatable
`-v`/`--verbose` flag, and one positional URL:

	speed := Long("speed").Help("transfer speed").ArgumentString("SPEED")
	verbose := Many(Short('v').Long("verbose").Help("increase verbosity").Flag())
	url := PositionalString("URL")
	cli := ConstructStruct3(speed, verbose, url, func(s string, v []Unit, u string) Config {
		return Config{Speed: s, Verbosity: len(v), URL: u}
	})

See the package examples for complete, runnable walkthroughs.
*/
package combinator
