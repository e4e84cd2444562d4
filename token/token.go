// Package token defines the input alphabet for key notation parsing.
//
// A notation string is lexed into a flat stream of tokens: identifier
// names, literals (bare digits or quoted characters), single punctuation
// runes, and parenthesized groups. Every token carries its byte offset in
// the source so that parse diagnostics can point at the offending input.
package token

import (
	"fmt"
	"strings"
)

// Kind identifies the class of a token.
type Kind uint8

const (
	// KindName is an identifier run such as "shift", "A" or "Escape".
	KindName Kind = iota

	// KindLiteral is a bare digit run or a single-quoted character.
	KindLiteral

	// KindPunct is a single punctuation rune such as '-' or ';'.
	KindPunct

	// KindGroup is a parenthesized group of nested tokens.
	KindGroup
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindLiteral:
		return "literal"
	case KindPunct:
		return "punctuation"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Token is a single lexed element of a key notation. Tokens are immutable
// values; readers consume them by advancing a Stream cursor.
type Token struct {
	// Kind is the token class.
	Kind Kind

	// Text is the token's content. Quoted literals store the unescaped
	// character; group tokens leave Text empty.
	Text string

	// Pos is the byte offset of the token in the source notation.
	Pos int

	// Inner holds the nested tokens of a group.
	Inner []Token
}

// String renders the token roughly as it appeared in the source.
func (t Token) String() string {
	if t.Kind != KindGroup {
		return t.Text
	}
	parts := make([]string, len(t.Inner))
	for i, in := range t.Inner {
		parts[i] = in.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Stream is a cursor over an immutable token list. Parse steps peek at the
// head, consume what they recognize and leave the remainder in place for
// the next reader.
type Stream struct {
	toks []Token
	pos  int
}

// NewStream creates a stream positioned at the first token.
func NewStream(toks []Token) *Stream {
	return &Stream{toks: toks}
}

// Peek returns the token at the cursor without consuming it.
func (s *Stream) Peek() (Token, bool) {
	return s.PeekAt(0)
}

// PeekAt returns the token n positions past the cursor without consuming
// anything.
func (s *Stream) PeekAt(n int) (Token, bool) {
	if s.pos+n >= len(s.toks) {
		return Token{}, false
	}
	return s.toks[s.pos+n], true
}

// Next consumes and returns the token at the cursor.
func (s *Stream) Next() (Token, bool) {
	if s.pos >= len(s.toks) {
		return Token{}, false
	}
	t := s.toks[s.pos]
	s.pos++
	return t, true
}

// Skip advances the cursor by n tokens.
func (s *Stream) Skip(n int) {
	s.pos += n
	if s.pos > len(s.toks) {
		s.pos = len(s.toks)
	}
}

// Len returns the number of unconsumed tokens.
func (s *Stream) Len() int {
	return len(s.toks) - s.pos
}

// Empty returns true if no tokens remain.
func (s *Stream) Empty() bool {
	return s.pos >= len(s.toks)
}

// Pos returns the source offset of the next token, or the offset just past
// the final token once the stream is exhausted.
func (s *Stream) Pos() int {
	if s.pos < len(s.toks) {
		return s.toks[s.pos].Pos
	}
	if len(s.toks) == 0 {
		return 0
	}
	last := s.toks[len(s.toks)-1]
	return last.Pos + len(last.Text)
}
