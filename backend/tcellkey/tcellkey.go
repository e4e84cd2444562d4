// Package tcellkey binds parsed chords to the tcell key namespace.
//
// It provides the backend-validated resolution mode: identifiers produced
// by the physical resolver are checked against the set of keys tcell can
// actually deliver, so a misspelled key name fails at translation time
// instead of silently never matching. It also lowers chords into the
// (ModMask, Key, Rune) triple tcell events are compared with.
package tcellkey

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyseq"
)

// Stroke is a chord expressed in tcell terms. Character keys use KeyRune
// with the rune set; special keys use the tcell key constant.
type Stroke struct {
	Mods tcell.ModMask
	Key  tcell.Key
	Rune rune
}

// charRunes maps canonical physical key names back to the character the
// key produces. These identifiers have no tcell key constant; they arrive
// as KeyRune events.
var charRunes = map[string]rune{
	"Semicolon":  ';',
	"Colon":      ':',
	"Comma":      ',',
	"Period":     '.',
	"Caret":      '^',
	"Equals":     '=',
	"Slash":      '/',
	"Minus":      '-',
	"Asterisk":   '*',
	"Plus":       '+',
	"At":         '@',
	"Apostrophe": '\'',
	"Grave":      '`',
	"Backslash":  '\\',
	"Space":      ' ',
}

// specialKeys maps plain tcell key names ("Enter", "Up", "F1") to their
// key constants. Built once from tcell.KeyNames; combination names like
// "Ctrl-A" are excluded since modifiers are carried on the chord mask.
var specialKeys = map[string]tcell.Key{}

func init() {
	for k, name := range tcell.KeyNames {
		if k == tcell.KeyRune || strings.Contains(name, "-") {
			continue
		}
		specialKeys[name] = k
	}
}

// Names returns every identifier this backend accepts: the letters A-Z,
// Key0-Key9, the punctuation and literal names, and tcell's own key names.
func Names() []string {
	names := make([]string, 0, 26+10+len(charRunes)+len(specialKeys))
	for c := 'A'; c <= 'Z'; c++ {
		names = append(names, string(c))
	}
	for d := '0'; d <= '9'; d++ {
		names = append(names, "Key"+string(d))
	}
	for name := range charRunes {
		names = append(names, name)
	}
	for name := range specialKeys {
		names = append(names, name)
	}
	return names
}

// Resolver returns a physical-key resolver validated against this
// backend's namespace. Use it with keyseq.NewParser to get
// ErrUnknownBackendKey for names tcell does not know.
func Resolver() keyseq.Resolver {
	return keyseq.NewNamespaceResolver(keyseq.PhysicalResolver{}, Names())
}

// FromChord lowers a parsed chord into a tcell stroke. Identifiers outside
// the backend namespace report keyseq.ErrUnknownBackendKey; chords parsed
// with Resolver() never do.
func FromChord(c keyseq.Chord) (Stroke, error) {
	s := Stroke{Mods: modMask(c.Mods), Key: tcell.KeyRune}

	id := c.Key
	switch {
	case len(id) == 1 && id[0] >= 'A' && id[0] <= 'Z':
		s.Rune = rune(id[0])
	case len(id) == 4 && strings.HasPrefix(id, "Key") && id[3] >= '0' && id[3] <= '9':
		s.Rune = rune(id[3])
	default:
		if r, ok := charRunes[id]; ok {
			s.Rune = r
			break
		}
		if k, ok := specialKeys[id]; ok {
			s.Key = k
			break
		}
		return Stroke{}, &keyseq.ParseError{Err: keyseq.ErrUnknownBackendKey, Text: id}
	}
	return s, nil
}

// FromSequence lowers a parsed sequence into tcell strokes.
func FromSequence(seq keyseq.Sequence) ([]Stroke, error) {
	strokes := make([]Stroke, 0, len(seq))
	for _, c := range seq {
		s, err := FromChord(c)
		if err != nil {
			return nil, err
		}
		strokes = append(strokes, s)
	}
	return strokes, nil
}

func modMask(m keyseq.Modifier) tcell.ModMask {
	var mask tcell.ModMask
	if m.HasShift() {
		mask |= tcell.ModShift
	}
	if m.HasCtrl() {
		mask |= tcell.ModCtrl
	}
	if m.HasAlt() {
		mask |= tcell.ModAlt
	}
	if m.HasSuper() {
		mask |= tcell.ModMeta
	}
	return mask
}
