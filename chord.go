package keyseq

import "strings"

// Chord is one simultaneous key press: a modifier mask plus a single
// canonical key identifier. Chords are immutable values produced by the
// parser; they are never built up incrementally by callers.
type Chord struct {
	// Mods is the modifier bitmask.
	Mods Modifier

	// Key is the canonical key identifier, e.g. "A", "Key1", "Semicolon".
	// Its exact form depends on the resolver the parser was built with.
	Key string
}

// String renders the chord in canonical notation, e.g. "ctrl-shift-A".
// Parsing the result with the same resolver yields an identical chord.
func (c Chord) String() string {
	if c.Mods.IsEmpty() {
		return c.Key
	}
	return c.Mods.String() + "-" + c.Key
}

// Equals returns true if two chords represent the same key press.
func (c Chord) Equals(other Chord) bool {
	return c == other
}

// Sequence is an ordered list of chords representing consecutive key
// presses. Order is textual left-to-right order in the notation.
type Sequence []Chord

// String renders the sequence in canonical notation, chords separated by
// spaces.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Equals returns true if two sequences are identical chord for chord.
func (s Sequence) Equals(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i, c := range s {
		if c != other[i] {
			return false
		}
	}
	return true
}
