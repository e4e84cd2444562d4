package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Error is a lexing failure with the byte offset where it occurred.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("pos %d: %s", e.Pos, e.Msg)
}

// Lex converts a notation string into a token stream.
//
// Lexical rules:
//   - whitespace separates tokens and is otherwise ignored
//   - an ASCII letter or underscore starts a Name run ([A-Za-z0-9_]+)
//   - a digit run is a Literal
//   - a single-quoted character is a Literal; \' and \\ are recognized
//     escapes, and the quoted content must be one character
//   - parentheses delimit a Group of nested tokens
//   - any other printable rune is a one-rune Punct
func Lex(src string) ([]Token, error) {
	l := &lexer{src: src}
	toks, err := l.run(false)
	if err != nil {
		return nil, err
	}
	return toks, nil
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) run(inGroup bool) ([]Token, error) {
	var toks []Token
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		switch {
		case unicode.IsSpace(r):
			l.pos += size

		case r == ')':
			if inGroup {
				return toks, nil
			}
			return nil, &Error{Pos: l.pos, Msg: "unbalanced ')'"}

		case r == '(':
			start := l.pos
			l.pos += size
			inner, err := l.run(true)
			if err != nil {
				return nil, err
			}
			if l.pos >= len(l.src) {
				return nil, &Error{Pos: start, Msg: "unclosed '('"}
			}
			l.pos++ // closing paren
			toks = append(toks, Token{Kind: KindGroup, Pos: start, Inner: inner})

		case r == '\'':
			tok, err := l.quoted()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)

		case isNameStart(r):
			toks = append(toks, l.name())

		case r >= '0' && r <= '9':
			toks = append(toks, l.digits())

		case unicode.IsPrint(r):
			toks = append(toks, Token{Kind: KindPunct, Text: string(r), Pos: l.pos})
			l.pos += size

		default:
			return nil, &Error{Pos: l.pos, Msg: fmt.Sprintf("invalid character %q", r)}
		}
	}
	return toks, nil
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameRune(r rune) bool {
	return isNameStart(r) || (r >= '0' && r <= '9')
}

func (l *lexer) name() Token {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isNameRune(r) {
			break
		}
		l.pos += size
	}
	return Token{Kind: KindName, Text: l.src[start:l.pos], Pos: start}
}

func (l *lexer) digits() Token {
	start := l.pos
	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
	}
	return Token{Kind: KindLiteral, Text: l.src[start:l.pos], Pos: start}
}

// quoted reads a single-quoted character literal starting at the opening
// quote. The stored text is the unescaped content.
func (l *lexer) quoted() (Token, error) {
	start := l.pos
	l.pos++ // opening quote

	var content []rune
	for {
		if l.pos >= len(l.src) {
			return Token{}, &Error{Pos: start, Msg: "unterminated literal"}
		}
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += size
		if r == '\'' {
			break
		}
		if r == '\\' {
			if l.pos >= len(l.src) {
				return Token{}, &Error{Pos: start, Msg: "unterminated literal"}
			}
			esc, escSize := utf8.DecodeRuneInString(l.src[l.pos:])
			l.pos += escSize
			r = esc
		}
		content = append(content, r)
	}

	text := string(content)
	// One user-perceived character, so a combining sequence still counts.
	switch n := uniseg.GraphemeClusterCount(text); {
	case n == 0:
		return Token{}, &Error{Pos: start, Msg: "empty literal"}
	case n > 1:
		return Token{}, &Error{Pos: start, Msg: fmt.Sprintf("literal %q must be a single character", text)}
	}
	return Token{Kind: KindLiteral, Text: text, Pos: start}, nil
}
