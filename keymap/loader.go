package keymap

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/dshills/keyseq"
)

// Load parses a JSON keymap document:
//
//	{
//	  "name": "default",
//	  "bindings": [
//	    {"keys": "ctrl-S", "action": "file.save", "description": "..."},
//	    {"keys": "ctrl-K ctrl-C", "action": "comment.toggle"}
//	  ]
//	}
//
// Every notation is parsed with the physical resolver; the first invalid
// binding aborts the load with an error naming its action.
func Load(data []byte) (*Keymap, error) {
	return LoadWith(data, nil)
}

// LoadWith is Load with an explicit parser, for logical or
// backend-validated keymaps. A nil parser selects the physical default.
func LoadWith(data []byte, p *keyseq.Parser) (*Keymap, error) {
	if p == nil {
		p = keyseq.NewParser(nil)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.New("keymap: invalid JSON")
	}

	doc := gjson.ParseBytes(data)
	km := New(doc.Get("name").String())

	var loadErr error
	doc.Get("bindings").ForEach(func(_, b gjson.Result) bool {
		notation := b.Get("keys").String()
		action := b.Get("action").String()

		seq, err := p.ParseSequence(notation)
		if err != nil {
			loadErr = fmt.Errorf("keymap: binding %q: %w", action, err)
			return false
		}
		km.Bindings = append(km.Bindings, Binding{
			Keys:        seq,
			Action:      action,
			Description: b.Get("description").String(),
		})
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return km, nil
}

// LoadFile loads a JSON keymap from disk.
func LoadFile(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: opening %s: %w", path, err)
	}
	return Load(data)
}
