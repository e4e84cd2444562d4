package keyseq

import (
	"errors"
	"fmt"

	"github.com/dshills/keyseq/token"
)

// Translation error kinds. Every failure wraps one of these, so callers
// can classify with errors.Is.
var (
	// ErrUnknownLiteral is a quoted literal outside the fixed table.
	ErrUnknownLiteral = errors.New("unrecognized literal")

	// ErrUnknownPunct is a punctuation symbol outside the fixed table.
	ErrUnknownPunct = errors.New("unrecognized punctuation")

	// ErrLowercaseKey is a single lowercase letter used as a key name.
	ErrLowercaseKey = errors.New("lowercase key name; use the uppercase spelling")

	// ErrMissingKey means modifiers were read but no key token followed.
	ErrMissingKey = errors.New("no key token found")

	// ErrEmptyInput means the notation contained no tokens at all.
	ErrEmptyInput = errors.New("empty key notation")

	// ErrExcessTokens means tokens remained after a single-chord parse.
	ErrExcessTokens = errors.New("too many tokens; use the sequence form for multiple keys")

	// ErrUnknownBackendKey means the resolved identifier does not exist
	// in the selected backend's key namespace.
	ErrUnknownBackendKey = errors.New("key does not exist in backend namespace")
)

// ParseError is a translation failure annotated with the offending token's
// source text and byte offset.
type ParseError struct {
	// Err is the error kind.
	Err error

	// Text is the source text of the offending token, if any.
	Text string

	// Pos is the byte offset in the notation.
	Pos int
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("pos %d: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("pos %d: %v: %q", e.Pos, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func tokenError(kind error, tok token.Token) error {
	return &ParseError{Err: kind, Text: tok.String(), Pos: tok.Pos}
}
