//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import "github.com/bassosimone/runtimex"

// noLeftmost is the sentinel meaning "no token has been consumed yet".
const noLeftmost = -1

// ArgBuffer is a preprocessed, mutable view of a token vector.
//
// The token vector itself is shared (cheap to duplicate for speculative
// parsing, e.g. in [Alt] and [Optional]); the removal bitmap and small
// scalar counters are per-buffer.
type ArgBuffer struct {
	// tokens is shared across every clone of this buffer; primitives
	// never mutate it, only the bitmap below.
	tokens []Token

	// removed marks consumed indices. Same length as tokens.
	removed []bool

	// remaining is the count of false entries in removed.
	remaining int

	// leftmost is the smallest index ever removed from this buffer, or
	// noLeftmost if nothing has been removed yet.
	leftmost int

	// current is the most recently consumed Word, used to give parse
	// and guard errors useful context.
	current *Word
}

// NewArgBuffer builds an [*ArgBuffer] over the given token vector.
func NewArgBuffer(tokens []Token) *ArgBuffer {
	return &ArgBuffer{
		tokens:    tokens,
		removed:   make([]bool, len(tokens)),
		remaining: len(tokens),
		leftmost:  noLeftmost,
	}
}

// Len returns the number of tokens not yet consumed.
func (b *ArgBuffer) Len() int {
	return b.remaining
}

// IsEmpty reports whether every token has been consumed.
func (b *ArgBuffer) IsEmpty() bool {
	return b.remaining == 0
}

// Current returns the most recently consumed [Word], if any.
func (b *ArgBuffer) Current() (Word, bool) {
	if b.current == nil {
		return Word{}, false
	}
	return *b.current, true
}

// Clone returns an independent copy of b: an O(1) share of the token
// vector plus an O(n) copy of the removal bitmap and scalars. Mutating
// the clone never affects b, and vice versa.
func (b *ArgBuffer) Clone() *ArgBuffer {
	removed := make([]bool, len(b.removed))
	copy(removed, b.removed)
	return &ArgBuffer{
		tokens:    b.tokens,
		removed:   removed,
		remaining: b.remaining,
		leftmost:  b.leftmost,
		current:   b.current,
	}
}

// adopt replaces b's state with other's state in place, used by [Alt] to
// commit the winning branch's buffer into the caller's buffer variable.
func (b *ArgBuffer) adopt(other *ArgBuffer) {
	*b = *other
}

// nextIndex returns the smallest non-removed index strictly greater than
// after (pass noLeftmost to start from the beginning), or ok=false if
// there is none. It performs no allocation.
func (b *ArgBuffer) nextIndex(after int) (index int, ok bool) {
	for i := after + 1; i < len(b.tokens); i++ {
		if !b.removed[i] {
			return i, true
		}
	}
	return 0, false
}

// Peek returns the first remaining token, if any, without consuming it.
func (b *ArgBuffer) Peek() (Token, bool) {
	i, ok := b.nextIndex(noLeftmost)
	if !ok {
		return Token{}, false
	}
	return b.tokens[i], true
}

// Remove marks index as consumed. Removing an already-removed index is a
// no-op, matching the buffer's monotonic invariants.
func (b *ArgBuffer) Remove(index int) {
	if !b.removed[index] {
		b.removed[index] = true
		b.remaining--
		if b.leftmost == noLeftmost || index < b.leftmost {
			b.leftmost = index
		}
		trace("buffer: consumed token %d: %s", index, b.tokens[index].String())
	}
	runtimex.Assert(b.remaining >= 0)
}

// setCurrent records w as the most recently consumed word.
func (b *ArgBuffer) setCurrent(w Word) {
	b.current = &w
}

// find scans remaining tokens in ascending index order and returns the
// first one matching predicate, without consuming it.
func (b *ArgBuffer) find(predicate func(Token) bool) (index int, tok Token, ok bool) {
	for i, next := b.nextIndex(noLeftmost); next; i, next = b.nextIndex(i) {
		if predicate(b.tokens[i]) {
			return i, b.tokens[i], true
		}
	}
	return 0, Token{}, false
}
