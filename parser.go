package keyseq

import (
	"github.com/dshills/keyseq/token"
)

// Parser translates key notation into chords using a fixed resolution
// strategy. Parsers are stateless and safe for concurrent use.
type Parser struct {
	resolver Resolver
}

// NewParser creates a parser with the given resolver. A nil resolver
// selects PhysicalResolver.
func NewParser(r Resolver) *Parser {
	if r == nil {
		r = PhysicalResolver{}
	}
	return &Parser{resolver: r}
}

var defaultParser = NewParser(PhysicalResolver{})

// Parse parses a single chord with the physical resolver.
// The notation must contain exactly one chord.
func Parse(notation string) (Chord, error) {
	return defaultParser.Parse(notation)
}

// ParseSequence parses one or more space-separated chords with the
// physical resolver.
func ParseSequence(notation string) (Sequence, error) {
	return defaultParser.ParseSequence(notation)
}

// MustParse parses a single chord and panics on error.
// Use only for known-valid notation in initialization code.
func MustParse(notation string) Chord {
	c, err := Parse(notation)
	if err != nil {
		panic("invalid key notation: " + notation + ": " + err.Error())
	}
	return c
}

// MustParseSequence parses a sequence and panics on error.
// Use only for known-valid notation in initialization code.
func MustParseSequence(notation string) Sequence {
	s, err := ParseSequence(notation)
	if err != nil {
		panic("invalid key notation: " + notation + ": " + err.Error())
	}
	return s
}

// Parse parses a notation containing exactly one chord. Leftover tokens
// after the first chord are an error; use ParseSequence for multiple keys.
func (p *Parser) Parse(notation string) (Chord, error) {
	toks, err := token.Lex(notation)
	if err != nil {
		return Chord{}, err
	}
	ts := token.NewStream(toks)
	if ts.Empty() {
		return Chord{}, &ParseError{Err: ErrEmptyInput}
	}

	chord, err := p.ReadChord(ts)
	if err != nil {
		return Chord{}, err
	}
	if !ts.Empty() {
		extra, _ := ts.Peek()
		return Chord{}, tokenError(ErrExcessTokens, extra)
	}
	return chord, nil
}

// ParseSequence parses a notation into an ordered chord sequence. The
// notation must contain at least one chord.
func (p *Parser) ParseSequence(notation string) (Sequence, error) {
	toks, err := token.Lex(notation)
	if err != nil {
		return nil, err
	}
	ts := token.NewStream(toks)
	if ts.Empty() {
		return nil, &ParseError{Err: ErrEmptyInput}
	}

	var seq Sequence
	for !ts.Empty() {
		chord, err := p.ReadChord(ts)
		if err != nil {
			return nil, err
		}
		seq = append(seq, chord)
	}
	return seq, nil
}

// ReadChord reads exactly one chord from the stream, leaving any remaining
// tokens in place. Callers assembling multi-chord sequences invoke it
// repeatedly on the same stream until it is empty.
func (p *Parser) ReadChord(ts *token.Stream) (Chord, error) {
	mods := readModifiers(ts)

	tok, ok := ts.Next()
	if !ok {
		return Chord{}, &ParseError{Err: ErrMissingKey, Pos: ts.Pos()}
	}
	id, err := p.resolver.Resolve(tok)
	if err != nil {
		return Chord{}, err
	}
	return Chord{Mods: mods, Key: id}, nil
}

// readModifiers consumes the leading run of "<modifier>-" pairs, OR-ing
// flags into the mask. The scan needs pairwise lookahead: a modifier name
// only counts when a dash follows it, so a trailing "shift" with no dash
// is left in the stream to be resolved as the key itself.
func readModifiers(ts *token.Stream) Modifier {
	mods := ModNone
	for {
		cur, ok := ts.Peek()
		if !ok || cur.Kind != token.KindName {
			break
		}
		mod := ModifierFromName(cur.Text)
		if mod == ModNone {
			break
		}
		next, ok := ts.PeekAt(1)
		if !ok || !isDash(next) {
			break
		}
		mods = mods.With(mod)
		ts.Skip(2)
	}
	return mods
}

func isDash(t token.Token) bool {
	return t.Kind == token.KindPunct && t.Text == "-"
}
