package keymap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keyseq"
)

const sampleKeymap = `{
  "name": "default",
  "bindings": [
    {"keys": "ctrl-S", "action": "file.save", "description": "Save the current file"},
    {"keys": "ctrl-X ctrl-C", "action": "app.quit"},
    {"keys": "alt-ctrl-;", "action": "comment.toggle"}
  ]
}`

func TestLoad(t *testing.T) {
	km, err := Load([]byte(sampleKeymap))
	require.NoError(t, err)

	assert.Equal(t, "default", km.Name)
	require.Equal(t, 3, km.Len())

	save := km.Bindings[0]
	assert.Equal(t, "file.save", save.Action)
	assert.Equal(t, "Save the current file", save.Description)
	assert.True(t, save.Keys.Equals(keyseq.Sequence{{Mods: keyseq.ModCtrl, Key: "S"}}))

	quit := km.Bindings[1]
	assert.True(t, quit.Keys.Equals(keyseq.Sequence{
		{Mods: keyseq.ModCtrl, Key: "X"},
		{Mods: keyseq.ModCtrl, Key: "C"},
	}))

	comment := km.Bindings[2]
	assert.True(t, comment.Keys.Equals(keyseq.Sequence{
		{Mods: keyseq.ModCtrl | keyseq.ModAlt, Key: "Semicolon"},
	}))
}

func TestLoadBadNotation(t *testing.T) {
	data := `{"name": "broken", "bindings": [{"keys": "ctrl-s", "action": "file.save"}]}`

	_, err := Load([]byte(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, keyseq.ErrLowercaseKey)
	assert.Contains(t, err.Error(), "file.save")
}

func TestLoadInvalidJSON(t *testing.T) {
	_, err := Load([]byte("{not json"))
	assert.Error(t, err)
}

func TestLoadWithLogicalParser(t *testing.T) {
	data := `{"name": "logical", "bindings": [{"keys": "ctrl-s", "action": "file.save"}]}`

	km, err := LoadWith([]byte(data), keyseq.NewParser(keyseq.LogicalResolver{}))
	require.NoError(t, err)
	require.Equal(t, 1, km.Len())
	assert.True(t, km.Bindings[0].Keys.Equals(keyseq.Sequence{{Mods: keyseq.ModCtrl, Key: "s"}}))
}

func TestBindAndLookup(t *testing.T) {
	km := New("test")
	require.NoError(t, km.Bind("ctrl-S", "file.save"))
	require.NoError(t, km.Bind("ctrl-K ctrl-C", "comment.toggle"))

	b, ok := km.Lookup("comment.toggle")
	require.True(t, ok)
	assert.Equal(t, "ctrl-K ctrl-C", b.Keys.String())

	_, ok = km.Lookup("missing.action")
	assert.False(t, ok)

	err := km.Bind("a", "bad.binding")
	assert.ErrorIs(t, err, keyseq.ErrLowercaseKey)
	assert.Equal(t, 2, km.Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleKeymap), 0o644))

	km, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "default", km.Name)
	assert.Equal(t, 3, km.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
