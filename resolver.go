package keyseq

import (
	"github.com/dshills/keyseq/token"
)

// Resolver maps a single trailing key token to a canonical key identifier.
// The parser consults its resolver for exactly one token per chord, after
// the modifier chain has been read.
//
// Resolution strategy is fixed when the parser is constructed: the
// physical resolver names the key that was pressed, the logical resolver
// names the character that was typed, and a namespace resolver restricts
// either to a concrete backend's key set.
type Resolver interface {
	Resolve(tok token.Token) (string, error)
}

// literalNames maps quoted special characters to physical key names.
var literalNames = map[string]string{
	"'":  "Apostrophe",
	"`":  "Grave",
	"\\": "Backslash",
}

// punctNames maps punctuation symbols to physical key names.
//
// ':' maps to "Colon" even though on common layouts it is typed as
// shift+semicolon. The notation names keys, not layout gymnastics.
var punctNames = map[string]string{
	";": "Semicolon",
	":": "Colon",
	",": "Comma",
	".": "Period",
	"^": "Caret",
	"=": "Equals",
	"/": "Slash",
	"-": "Minus",
	"*": "Asterisk",
	"+": "Plus",
	"@": "At",
}

// PhysicalResolver resolves tokens to physical key names: digits become
// "Key1".."Key0" style identifiers, punctuation and quoted literals map
// through fixed tables, single uppercase letters stand for themselves and
// longer names ("Escape", "Semicolon") pass through verbatim.
//
// Lowercase single letters are rejected rather than silently uppercased;
// the notation has exactly one spelling for every key.
type PhysicalResolver struct{}

// Resolve implements Resolver.
func (PhysicalResolver) Resolve(tok token.Token) (string, error) {
	switch tok.Kind {
	case token.KindLiteral:
		if len(tok.Text) == 1 && tok.Text[0] >= '0' && tok.Text[0] <= '9' {
			return "Key" + tok.Text, nil
		}
		if name, ok := literalNames[tok.Text]; ok {
			return name, nil
		}
		return "", tokenError(ErrUnknownLiteral, tok)

	case token.KindPunct:
		if name, ok := punctNames[tok.Text]; ok {
			return name, nil
		}
		return "", tokenError(ErrUnknownPunct, tok)

	case token.KindName:
		if len(tok.Text) == 1 {
			c := tok.Text[0]
			switch {
			case c >= 'A' && c <= 'Z':
				return tok.Text, nil
			case c >= 'a' && c <= 'z':
				return "", tokenError(ErrLowercaseKey, tok)
			default:
				return "", tokenError(ErrUnknownLiteral, tok)
			}
		}
		return tok.Text, nil

	default:
		// A group can never be a key.
		return "", tokenError(ErrMissingKey, tok)
	}
}

// LogicalResolver resolves tokens to the character that was typed rather
// than the key that was pressed: single-character tokens stand for
// themselves with case preserved, and multi-character names pass through
// verbatim. There is no uppercase-only restriction in logical mode.
type LogicalResolver struct{}

// Resolve implements Resolver.
func (LogicalResolver) Resolve(tok token.Token) (string, error) {
	switch tok.Kind {
	case token.KindLiteral, token.KindPunct, token.KindName:
		return tok.Text, nil
	default:
		return "", tokenError(ErrMissingKey, tok)
	}
}

// NamespaceResolver wraps another resolver and validates every resolved
// identifier against a fixed set of valid names. Backends hand it their
// key-constant namespace so that a misspelled key name reports
// ErrUnknownBackendKey at translation time instead of never matching.
type NamespaceResolver struct {
	base  Resolver
	names map[string]struct{}
}

// NewNamespaceResolver creates a resolver that restricts base to the given
// identifier namespace.
func NewNamespaceResolver(base Resolver, names []string) *NamespaceResolver {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return &NamespaceResolver{base: base, names: set}
}

// Resolve implements Resolver.
func (r *NamespaceResolver) Resolve(tok token.Token) (string, error) {
	id, err := r.base.Resolve(tok)
	if err != nil {
		return "", err
	}
	if _, ok := r.names[id]; !ok {
		return "", &ParseError{Err: ErrUnknownBackendKey, Text: id, Pos: tok.Pos}
	}
	return id, nil
}
