package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/thompson/nfa"
)

const thirdFromLastB = `# third character from the end is b
start q0
accept q3

q0 'a' -> q0
q0 'b' -> q0
q0 'b' -> q1
q1 'a' -> q2
q1 'b' -> q2
q2 'a' -> q3   # trailing comment
q2 'b' -> q3
`

const containsAB = `start s
accept t
s 'a' -> a
s 'b' -> s
a 'a' -> a
a 'b' -> t
t 'a' -> t
t 'b' -> t`

func TestParse(t *testing.T) {
	f, err := Parse("third.rules", thirdFromLastB)
	require.NoError(t, err)

	assert.Len(t, f.Statements, 9)
	assert.Equal(t, []string{"q0", "q3", "q1", "q2"}, f.StateNames())

	require.NotNil(t, f.Statements[0].Start)
	assert.Equal(t, "q0", f.Statements[0].Start.State)
	assert.Equal(t, 2, f.Statements[0].Pos.Line)

	move := f.Statements[2].Move
	require.NotNil(t, move)
	assert.Equal(t, "q0", move.From)
	assert.Equal(t, "q0", move.To)
	require.NotNil(t, move.On.Char)
	assert.Equal(t, "'a'", *move.On.Char)
}

func TestNFA(t *testing.T) {
	f, err := Parse("third.rules", thirdFromLastB)
	require.NoError(t, err)

	d, err := f.NFA()
	require.NoError(t, err)

	assert.Equal(t, nfa.State(0), d.Start())
	assert.Equal(t, []nfa.State{1}, d.AcceptStates())

	for _, in := range []string{"baa", "abab", "bbb", "aabaa"} {
		assert.True(t, d.Accepts(in), "Accepts(%q)", in)
	}
	for _, in := range []string{"", "ba", "aaa", "baaa"} {
		assert.False(t, d.Accepts(in), "Accepts(%q)", in)
	}
}

func TestNFA_FreeMoves(t *testing.T) {
	src := `start a
accept c
a free -> b
b 'x' -> c
c free -> a
`
	f, err := Parse("free.rules", src)
	require.NoError(t, err)

	d, err := f.NFA()
	require.NoError(t, err)

	assert.True(t, d.Accepts("x"))
	assert.True(t, d.Accepts("xxx"))
	assert.False(t, d.Accepts(""))

	_, err = f.DFA()
	assert.ErrorIs(t, err, ErrFreeMove)

	var ruleErr *Error
	require.True(t, errors.As(err, &ruleErr))
	assert.Equal(t, 3, ruleErr.Pos.Line)
	assert.Contains(t, err.Error(), "free.rules:3")
}

func TestDFA(t *testing.T) {
	f, err := Parse("contains.rules", containsAB)
	require.NoError(t, err)

	d, err := f.DFA()
	require.NoError(t, err)

	assert.True(t, d.Accepts("bab"))
	assert.True(t, d.Accepts("aab"))
	assert.False(t, d.Accepts("bba"))
	assert.False(t, d.Recognize("abc"))
	assert.Equal(t, 6, d.Transitions().Len())
}

func TestCharLiterals(t *testing.T) {
	src := `start q0
accept q1
q0 '\n' -> q1
q0 'é' -> q1
q0 '\'' -> q1
`
	f, err := Parse("chars.rules", src)
	require.NoError(t, err)

	d, err := f.DFA()
	require.NoError(t, err)

	assert.True(t, d.Accepts("\n"))
	assert.True(t, d.Accepts("é"))
	assert.True(t, d.Accepts("'"))
	assert.Equal(t, []rune{'\n', '\'', 'é'}, d.Transitions().Alphabet())
}

func TestSemanticErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		dfa  bool
		want error
		line int
	}{
		{"no start", "accept q0\nq0 'a' -> q0\n", false, ErrNoStart, 1},
		{"multiple start", "start q0\nstart q1\n", false, ErrMultipleStart, 2},
		{"multi-rune literal", "start q0\nq0 'ab' -> q0\n", false, ErrUnknownChar, 2},
		{"empty literal", "start q0\nq0 '' -> q0\n", false, ErrUnknownChar, 2},
		{"conflict", "start q0\nq0 'a' -> q1\nq0 'a' -> q2\n", true, ErrConflict, 3},
		{"free move", "start q0\nq0 free -> q1\n", true, ErrFreeMove, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse("bad.rules", tt.src)
			require.NoError(t, err)

			if tt.dfa {
				_, err = f.DFA()
			} else {
				_, err = f.NFA()
			}
			require.ErrorIs(t, err, tt.want)

			var ruleErr *Error
			require.ErrorAs(t, err, &ruleErr)
			assert.Equal(t, tt.line, ruleErr.Pos.Line)
		})
	}
}

func TestConflictAllowedInNFA(t *testing.T) {
	f, err := Parse("nondet.rules", "start q0\naccept q2\nq0 'a' -> q1\nq0 'a' -> q2\n")
	require.NoError(t, err)

	d, err := f.NFA()
	require.NoError(t, err)
	assert.True(t, d.Accepts("a"))
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing arrow", "start q0\nq0 'a' q1\n"},
		{"missing target", "start q0\nq0 'a' ->\n"},
		{"accept without states", "start q0\naccept\n"},
		{"unterminated char", "start q0\nq0 'a -> q1\n"},
		{"bare word", "start q0\nq0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.rules", tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "rules: bad.rules:")
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contains.rules")
	require.NoError(t, os.WriteFile(path, []byte(containsAB), 0o600))

	f, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "t", "a"}, f.StateNames())

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.rules"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEmptyFile(t *testing.T) {
	f, err := Parse("empty.rules", "# nothing here\n\n")
	require.NoError(t, err)
	assert.Empty(t, f.Statements)

	_, err = f.NFA()
	assert.ErrorIs(t, err, ErrNoStart)
}
