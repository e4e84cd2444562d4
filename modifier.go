package keyseq

import "strings"

// Modifier represents keyboard modifier keys as a bitmask.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 2

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt Modifier = 4

	// ModSuper indicates the Super key (Cmd on macOS, Win on Windows).
	ModSuper Modifier = 8
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is set.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is set.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is set.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasSuper returns true if Super is set.
func (m Modifier) HasSuper() bool {
	return m.Has(ModSuper)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns the canonical notation for the modifier chain, in bit
// order: "shift-ctrl-alt-super". Empty for ModNone.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasShift() {
		parts = append(parts, "shift")
	}
	if m.HasCtrl() {
		parts = append(parts, "ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "alt")
	}
	if m.HasSuper() {
		parts = append(parts, "super")
	}
	return strings.Join(parts, "-")
}

// modifierNames maps the notation's modifier names to Modifier values.
// Names are matched exactly; the notation is deliberately lowercase.
var modifierNames = map[string]Modifier{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"super": ModSuper,
}

// ModifierFromName returns the Modifier for a notation name.
// Returns ModNone if the name is not a recognized modifier.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNames[name]; ok {
		return m
	}
	return ModNone
}
