//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tokenize(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want []Token
	}{
		{
			name: "long flag",
			args: []string{"--verbose"},
			want: []Token{longToken("verbose")},
		},
		{
			name: "long option with equals",
			args: []string{"--output=index.html"},
			want: []Token{longToken("output"), wordToken("index.html", "index.html", true)},
		},
		{
			name: "short cluster explodes one rune per token",
			args: []string{"-vvv"},
			want: []Token{shortToken('v'), shortToken('v'), shortToken('v')},
		},
		{
			name: "short cluster mixed runes",
			args: []string{"-xyz"},
			want: []Token{shortToken('x'), shortToken('y'), shortToken('z')},
		},
		{
			name: "short option with equals",
			args: []string{"-o=index.html"},
			want: []Token{shortToken('o'), wordToken("index.html", "index.html", true)},
		},
		{
			name: "separator toggles rest to positional",
			args: []string{"--", "--not-a-flag"},
			want: []Token{wordToken("--not-a-flag", "--not-a-flag", true)},
		},
		{
			name: "positional word",
			args: []string{"file.txt"},
			want: []Token{wordToken("file.txt", "file.txt", true)},
		},
		{
			name: "negative-looking value after long option with equals",
			args: []string{"--speed=-1"},
			want: []Token{longToken("speed"), wordToken("-1", "-1", true)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.args)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_Tokenize_nonUTF8_alwaysWord(t *testing.T) {
	invalid := string([]byte{0xff, 0xfe})
	got := Tokenize([]string{invalid})
	assert.Equal(t, []Token{wordToken(invalid, "", false)}, got)
}

func Test_splitOption_shortEqualsRejectsMultiCharKey(t *testing.T) {
	assert.Panics(t, func() {
		Tokenize([]string{"-ab=c"})
	})
}
