//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Map(t *testing.T) {
	p := Map(Long("verbose").Flag(), func(Unit) bool { return true })
	b := NewArgBuffer(Tokenize([]string{"--verbose"}))

	v, err := p.Run(b)
	require.NoError(t, err)
	assert.True(t, v)
}

func Test_Map_propagatesFailure(t *testing.T) {
	p := Map(Long("verbose").Flag(), func(Unit) bool { return true })
	b := NewArgBuffer(Tokenize([]string{}))

	_, err := p.Run(b)
	assert.True(t, IsMissing(err))
}

func Test_ParseWith_convertsValue(t *testing.T) {
	p := ParseWith(Long("count").ArgumentString("N"), func(s string) (int, error) {
		return strconv.Atoi(s)
	})
	b := NewArgBuffer(Tokenize([]string{"--count", "42"}))

	v, err := p.Run(b)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func Test_ParseWith_wrapsConversionFailure(t *testing.T) {
	p := ParseWith(Long("count").ArgumentString("N"), func(s string) (int, error) {
		return strconv.Atoi(s)
	})
	b := NewArgBuffer(Tokenize([]string{"--count", "nope"}))

	_, err := p.Run(b)
	var target ParseValueError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "nope", target.Value)
}

func Test_Guard_rejectsValue(t *testing.T) {
	p := Guard(
		ParseWith(Long("count").ArgumentString("N"), func(s string) (int, error) { return strconv.Atoi(s) }),
		func(n int) bool { return n > 0 },
		"count must be positive",
	)
	b := NewArgBuffer(Tokenize([]string{"--count=-1"}))

	_, err := p.Run(b)
	var target GuardError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "count must be positive", target.Message)
}

func Test_Optional_presentAndAbsent(t *testing.T) {
	p := Optional(Long("verbose").Flag())

	b := NewArgBuffer(Tokenize([]string{"--verbose"}))
	v, err := p.Run(b)
	require.NoError(t, err)
	assert.True(t, v.Present)

	b2 := NewArgBuffer(Tokenize([]string{}))
	v2, err := p.Run(b2)
	require.NoError(t, err)
	assert.False(t, v2.Present)
}

func Test_Optional_doesNotConsumeOnAbsence(t *testing.T) {
	p := Optional(Long("verbose").Flag())
	b := NewArgBuffer(Tokenize([]string{"file.txt"}))

	_, err := p.Run(b)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())
}

func Test_Many_accumulatesUntilRecoverableFailure(t *testing.T) {
	p := Many(Long("tag").ArgumentString("TAG"))
	b := NewArgBuffer(Tokenize([]string{"--tag", "a", "--tag", "b", "file.txt"}))

	v, err := p.Run(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)
	assert.Equal(t, 1, b.Len())
}

func Test_Many_emptyIsNotAnError(t *testing.T) {
	p := Many(Long("tag").ArgumentString("TAG"))
	b := NewArgBuffer(Tokenize([]string{}))

	v, err := p.Run(b)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func Test_Some_failsOnEmpty(t *testing.T) {
	p := Some(Long("tag").ArgumentString("TAG"), "at least one --tag is required")
	b := NewArgBuffer(Tokenize([]string{}))

	_, err := p.Run(b)
	require.Error(t, err)
	assert.True(t, IsUserError(err))
	assert.Contains(t, err.Error(), "at least one --tag")
}

func Test_Some_succeedsWithAtLeastOne(t *testing.T) {
	p := Some(Long("tag").ArgumentString("TAG"), "at least one --tag is required")
	b := NewArgBuffer(Tokenize([]string{"--tag", "a"}))

	v, err := p.Run(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, v)
}

func Test_Fallback_usesValueOnMiss(t *testing.T) {
	p := Fallback(Long("speed").ArgumentString("N"), "slow")
	b := NewArgBuffer(Tokenize([]string{}))

	v, err := p.Run(b)
	require.NoError(t, err)
	assert.Equal(t, "slow", v)
}

func Test_Fallback_prefersParsedValue(t *testing.T) {
	p := Fallback(Long("speed").ArgumentString("N"), "slow")
	b := NewArgBuffer(Tokenize([]string{"--speed", "fast"}))

	v, err := p.Run(b)
	require.NoError(t, err)
	assert.Equal(t, "fast", v)
}

func Test_Fallback_propagatesFatalFailure(t *testing.T) {
	p := Fallback(Long("speed").ArgumentString("N"), "slow")
	invalid := string([]byte{0xff})
	b := NewArgBuffer(Tokenize([]string{"--speed", invalid}))

	_, err := p.Run(b)
	require.Error(t, err)
	var target ParseValueError
	require.ErrorAs(t, err, &target)
}

// Example_mapAndParseWith shows composing Map and ParseWith to produce a
// typed value from a raw option string.
func Example_mapAndParseWith() {
	countParser := ParseWith(Long("count").Short('c').ArgumentString("N"), func(s string) (int, error) {
		return strconv.Atoi(s)
	})
	doubled := Map(countParser, func(n int) int { return n * 2 })

	b := NewArgBuffer(Tokenize([]string{"-c", "21"}))
	v, err := doubled.Run(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)

	// Output:
	// 42
}
