// Package keyseq translates a compact keyboard chord notation into
// structured (modifier mask, key identifier) values.
//
// The notation grammar is
//
//	chord    := (modifier '-')* key
//	sequence := chord+        (chords separated by whitespace)
//
// where modifier is one of shift, ctrl, alt, super and key is a letter,
// digit, punctuation symbol, quoted character or key name:
//
//	keyseq.Parse("A")              // (0, "A")
//	keyseq.Parse("shift-A")        // (1, "A")
//	keyseq.Parse("alt-ctrl-;")     // (6, "Semicolon")
//	keyseq.Parse("alt-1")          // (4, "Key1")
//	keyseq.ParseSequence("shift-A ctrl-B")
//
// How the trailing key token becomes an identifier is pluggable. The
// default PhysicalResolver produces canonical physical key names without
// checking them against any real key set, LogicalResolver produces the
// typed character instead, and NewNamespaceResolver restricts either to a
// concrete backend (see the backend/tcellkey package). The strategy is
// chosen once, at NewParser time.
//
// Parsing is pure and synchronous: no I/O, no shared state, and all
// failures are reported at translation time with the offending token's
// position. Downstream input-matching machinery consumes the resulting
// Chord and Sequence values; this package never sees a live key event.
package keyseq
