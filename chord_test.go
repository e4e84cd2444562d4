package keyseq

import "testing"

func TestChordString(t *testing.T) {
	tests := []struct {
		chord Chord
		want  string
	}{
		{Chord{ModNone, "A"}, "A"},
		{Chord{ModShift, "A"}, "shift-A"},
		{Chord{ModCtrl | ModAlt, "Semicolon"}, "ctrl-alt-Semicolon"},
		{Chord{ModSuper, "Key1"}, "super-Key1"},
	}
	for _, tt := range tests {
		if got := tt.chord.String(); got != tt.want {
			t.Errorf("Chord%+v.String() = %q, want %q", tt.chord, got, tt.want)
		}
	}
}

func TestChordEquals(t *testing.T) {
	a := Chord{ModCtrl, "A"}
	if !a.Equals(Chord{ModCtrl, "A"}) {
		t.Error("identical chords not equal")
	}
	if a.Equals(Chord{ModCtrl, "B"}) || a.Equals(Chord{ModAlt, "A"}) {
		t.Error("different chords reported equal")
	}
}

func TestSequenceString(t *testing.T) {
	seq := Sequence{
		{ModShift, "A"},
		{ModNone, "B"},
		{ModCtrl | ModAlt, "Semicolon"},
	}
	want := "shift-A B ctrl-alt-Semicolon"
	if got := seq.String(); got != want {
		t.Errorf("Sequence.String() = %q, want %q", got, want)
	}

	if got := (Sequence{}).String(); got != "" {
		t.Errorf("empty Sequence.String() = %q, want \"\"", got)
	}
}

func TestSequenceEquals(t *testing.T) {
	a := Sequence{{ModShift, "A"}, {ModNone, "B"}}
	b := Sequence{{ModShift, "A"}, {ModNone, "B"}}
	if !a.Equals(b) {
		t.Error("identical sequences not equal")
	}
	if a.Equals(b[:1]) {
		t.Error("sequences of different length reported equal")
	}
	if a.Equals(Sequence{{ModShift, "A"}, {ModCtrl, "B"}}) {
		t.Error("different sequences reported equal")
	}
}
