//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import (
	"fmt"
	"os"
)

// RunInner runs p against args (which MUST NOT include the program
// name), with no process-level side effects -- no reading os.Args, no
// writing to standard output/error, no calling os.Exit. Use this from
// tests; [Run] is the thin process-level wrapper around it (spec §6).
func RunInner[T any](p Parser[T], args []string) (T, error) {
	tokens := Tokenize(args)
	buf := NewArgBuffer(tokens)
	return p.Run(buf)
}

// Run reads the real argument vector (os.Args[1:]), runs p, and handles
// the distinguished outcomes spec §6 names:
//
//  1. success with no remaining tokens: returns the parsed value;
//  2. a help request: prints the rendered help to standard output,
//     exits 0;
//  3. a version request: prints the version to standard output, exits 0;
//  4. any other failure (including leftover tokens, which [Options]
//     reports as [UnexpectedArgumentError]): prints the message to
//     standard error, exits 1.
//
// Run never returns when it calls os.Exit; build p with [Options] to get
// help/version handling in the first place.
func Run[T any](p Parser[T]) T {
	value, err := RunInner(p, os.Args[1:])
	if err == nil {
		return value
	}
	switch e := err.(type) {
	case HelpRequested:
		fmt.Fprint(os.Stdout, e.Text)
		os.Exit(0)
	case VersionRequested:
		fmt.Fprintln(os.Stdout, e.Text)
		os.Exit(0)
	default:
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	panic("unreachable")
}
