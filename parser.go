//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

// Unit is the result type of a parser whose only useful information is
// whether it matched, such as [Named.Flag].
type Unit = struct{}

// Parser is a composable command line parser producing a value of type T.
//
// Construct one with a primitive ([Short], [Long], [Positional],
// [Command]) and shape it with combinators ([Map], [ParseWith], [Guard],
// [Optional], [Many], [Some], [Fallback], [ConstructStruct2] and its
// siblings, [Alt]). A [Parser] is immutable once built; only the
// [ArgBuffer] it runs against is mutated, and only for the duration of
// one [Parser.Run] call.
type Parser[T any] struct {
	run  func(*ArgBuffer) (T, error)
	meta Meta
}

// newParser builds a [Parser] from its run function and metadata.
func newParser[T any](meta Meta, run func(*ArgBuffer) (T, error)) Parser[T] {
	return Parser[T]{run: run, meta: meta}
}

// Meta returns the parser's metadata node, consumed by [RenderUsage] and
// [RenderHelp].
func (p Parser[T]) Meta() Meta {
	return p.meta
}

// Run executes p against b. A recoverable absence is reported as a
// [MissingError]; anything else invalid is reported as a [UserError] (or
// one of its more specific siblings in errors.go). A failing run leaves b
// observably unchanged only when the failure is a [MissingError] --
// primitives that fail fatally may have partially consumed b, matching
// the fact that a fatal failure is never retried by a sibling.
func (p Parser[T]) Run(b *ArgBuffer) (T, error) {
	return p.run(b)
}
