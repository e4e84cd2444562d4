package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexChordNotation(t *testing.T) {
	toks, err := Lex("shift-A")
	require.NoError(t, err)
	require.Len(t, toks, 3)

	assert.Equal(t, Token{Kind: KindName, Text: "shift", Pos: 0}, toks[0])
	assert.Equal(t, Token{Kind: KindPunct, Text: "-", Pos: 5}, toks[1])
	assert.Equal(t, Token{Kind: KindName, Text: "A", Pos: 6}, toks[2])
}

func TestLexSequenceNotation(t *testing.T) {
	toks, err := Lex("ctrl-X  ctrl-S")
	require.NoError(t, err)
	require.Len(t, toks, 6)

	texts := make([]string, len(toks))
	for i, tok := range toks {
		texts[i] = tok.Text
	}
	assert.Equal(t, []string{"ctrl", "-", "X", "ctrl", "-", "S"}, texts)
	assert.Equal(t, 8, toks[3].Pos)
}

func TestLexTokenKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
		text string
	}{
		{"Escape", KindName, "Escape"},
		{"F4", KindName, "F4"},
		{"_x", KindName, "_x"},
		{"1", KindLiteral, "1"},
		{"42", KindLiteral, "42"},
		{";", KindPunct, ";"},
		{"@", KindPunct, "@"},
		{"'a'", KindLiteral, "a"},
		{`'\''`, KindLiteral, "'"},
		{`'\\'`, KindLiteral, `\`},
		{"'`'", KindLiteral, "`"},
	}

	for _, tt := range tests {
		toks, err := Lex(tt.src)
		require.NoError(t, err, "Lex(%q)", tt.src)
		require.Len(t, toks, 1, "Lex(%q)", tt.src)
		assert.Equal(t, tt.kind, toks[0].Kind, "Lex(%q) kind", tt.src)
		assert.Equal(t, tt.text, toks[0].Text, "Lex(%q) text", tt.src)
	}
}

func TestLexGroups(t *testing.T) {
	toks, err := Lex("(ctrl-A) B")
	require.NoError(t, err)
	require.Len(t, toks, 2)

	group := toks[0]
	assert.Equal(t, KindGroup, group.Kind)
	assert.Equal(t, 0, group.Pos)
	require.Len(t, group.Inner, 3)
	assert.Equal(t, "ctrl", group.Inner[0].Text)
	assert.Equal(t, "(ctrl - A)", group.String())

	// Nesting
	toks, err = Lex("((A))")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	require.Len(t, toks[0].Inner, 1)
	assert.Equal(t, KindGroup, toks[0].Inner[0].Kind)
}

func TestLexEmpty(t *testing.T) {
	toks, err := Lex("")
	require.NoError(t, err)
	assert.Empty(t, toks)

	toks, err = Lex("  \t ")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		src     string
		wantPos int
	}{
		{"'a", 0},       // unterminated literal
		{"A 'b", 2},     // unterminated literal after a token
		{"''", 0},       // empty literal
		{"'ab'", 0},     // more than one character
		{"(A", 0},       // unclosed group
		{")", 0},        // unbalanced close
		{`'\`, 0},       // escape at end of input
	}

	for _, tt := range tests {
		_, err := Lex(tt.src)
		require.Error(t, err, "Lex(%q)", tt.src)
		var lexErr *Error
		require.ErrorAs(t, err, &lexErr, "Lex(%q)", tt.src)
		assert.Equal(t, tt.wantPos, lexErr.Pos, "Lex(%q) pos", tt.src)
	}
}

func TestLexCombiningLiteral(t *testing.T) {
	// A combining sequence is one user-perceived character.
	toks, err := Lex("'é'")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "é", toks[0].Text)
}

func TestStreamCursor(t *testing.T) {
	toks, err := Lex("ctrl-A B")
	require.NoError(t, err)

	ts := NewStream(toks)
	assert.Equal(t, 4, ts.Len())
	assert.False(t, ts.Empty())
	assert.Equal(t, 0, ts.Pos())

	head, ok := ts.Peek()
	require.True(t, ok)
	assert.Equal(t, "ctrl", head.Text)

	second, ok := ts.PeekAt(1)
	require.True(t, ok)
	assert.Equal(t, "-", second.Text)

	// Peeking does not consume.
	assert.Equal(t, 4, ts.Len())

	ts.Skip(2)
	next, ok := ts.Next()
	require.True(t, ok)
	assert.Equal(t, "A", next.Text)
	assert.Equal(t, 7, ts.Pos())

	_, ok = ts.PeekAt(1)
	assert.False(t, ok)

	next, ok = ts.Next()
	require.True(t, ok)
	assert.Equal(t, "B", next.Text)

	assert.True(t, ts.Empty())
	_, ok = ts.Next()
	assert.False(t, ok)
	assert.Equal(t, 8, ts.Pos()) // just past the final token
}

func TestStreamEmpty(t *testing.T) {
	ts := NewStream(nil)
	assert.True(t, ts.Empty())
	assert.Equal(t, 0, ts.Len())
	assert.Equal(t, 0, ts.Pos())
	_, ok := ts.Peek()
	assert.False(t, ok)
}
