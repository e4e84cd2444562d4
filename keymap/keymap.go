// Package keymap loads tables of named key bindings whose notations are
// parsed up front, so every binding in a loaded keymap carries a valid
// chord sequence and all notation errors surface at load time.
package keymap

import (
	"github.com/dshills/keyseq"
)

// Binding maps a key sequence to an action name.
type Binding struct {
	// Keys is the parsed chord sequence that triggers this binding.
	Keys keyseq.Sequence

	// Action is the name of the command to execute.
	Action string

	// Description documents the binding.
	Description string
}

// Keymap holds the bindings for one context.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Bindings are the sequence-to-action mappings, in load order.
	Bindings []Binding
}

// New creates an empty keymap with the given name.
func New(name string) *Keymap {
	return &Keymap{Name: name}
}

// Bind parses a notation and appends a binding for it.
func (k *Keymap) Bind(notation, action string) error {
	seq, err := keyseq.ParseSequence(notation)
	if err != nil {
		return err
	}
	k.Bindings = append(k.Bindings, Binding{Keys: seq, Action: action})
	return nil
}

// Lookup returns the first binding for the given action.
func (k *Keymap) Lookup(action string) (Binding, bool) {
	for _, b := range k.Bindings {
		if b.Action == action {
			return b, true
		}
	}
	return Binding{}, false
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.Bindings)
}
