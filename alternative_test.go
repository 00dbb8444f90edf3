//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Alt_picksMatchingBranch(t *testing.T) {
	p := Alt(
		Map(Long("add").Flag(), func(Unit) string { return "add" }),
		Map(Long("remove").Flag(), func(Unit) string { return "remove" }),
	)

	b := NewArgBuffer(Tokenize([]string{"--remove"}))
	v, err := p.Run(b)
	require.NoError(t, err)
	assert.Equal(t, "remove", v)
}

func Test_Alt_leftmostWinsOverLaterDeclaredBranch(t *testing.T) {
	// Both branches can in principle match something in this buffer;
	// the one consuming the earlier token wins, regardless of declaration
	// order.
	p := Alt(
		Map(Long("second").Flag(), func(Unit) string { return "second" }),
		Map(Long("first").Flag(), func(Unit) string { return "first" }),
	)

	b := NewArgBuffer(Tokenize([]string{"--first", "--second"}))
	v, err := p.Run(b)
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func Test_Alt_declarationOrderBreaksExactTies(t *testing.T) {
	p := Alt(
		Map(Long("verbose").Flag(), func(Unit) string { return "a" }),
		Map(Long("verbose").Flag(), func(Unit) string { return "b" }),
	)

	b := NewArgBuffer(Tokenize([]string{"--verbose"}))
	v, err := p.Run(b)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func Test_Alt_noMatchReturnsFirstRecoverableFailure(t *testing.T) {
	p := Alt(
		Long("add").Flag(),
		Long("remove").Flag(),
	)

	b := NewArgBuffer(Tokenize([]string{}))
	_, err := p.Run(b)
	assert.True(t, IsMissing(err))
}

func Test_Alt_fatalErrorWins(t *testing.T) {
	invalid := string([]byte{0xff})
	p := Alt(
		Long("add").ArgumentString("N"),
		Long("remove").Flag(),
	)

	b := NewArgBuffer(Tokenize([]string{"--add", invalid}))
	_, err := p.Run(b)
	var target ParseValueError
	require.ErrorAs(t, err, &target)
}

func Test_Alt_doesNotMutateBufferOnFailure(t *testing.T) {
	p := Alt(
		Long("add").Flag(),
		Long("remove").Flag(),
	)

	b := NewArgBuffer(Tokenize([]string{"file.txt"}))
	_, err := p.Run(b)
	assert.True(t, IsMissing(err))
	assert.Equal(t, 1, b.Len())
}
