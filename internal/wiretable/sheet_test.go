package wiretable

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheet_Cells(t *testing.T) {
	s := NewSheet("Wires")
	assert.Equal(t, "Wires", s.Name())

	assert.False(t, s.HasContent("A2"))
	assert.Empty(t, s.Get("A2"))

	s.Set("A2", "1")
	assert.True(t, s.HasContent("A2"))
	assert.Equal(t, "1", s.Get("A2"))

	s.Set("A2", "")
	assert.False(t, s.HasContent("A2"))
}

func TestSheet_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wires.json")

	s := NewSheet("Wires")
	s.Set("A1", "Wire")
	s.Set("B4", "X1")
	require.NoError(t, s.Save(path))

	loaded, err := LoadSheet(path)
	require.NoError(t, err)
	assert.Equal(t, "Wires", loaded.Name())
	assert.Equal(t, "Wire", loaded.Get("A1"))
	assert.Equal(t, "X1", loaded.Get("B4"))
	assert.False(t, loaded.HasContent("C9"))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Add(NewSheet("Wires"))
	r.Add(NewSheet("Cables"))

	st, err := r.Lookup("Wires")
	require.NoError(t, err)
	assert.Equal(t, "Wires", st.Name())

	_, err = r.Lookup("Nope")
	assert.ErrorIs(t, err, ErrUnknownTable)

	assert.Equal(t, []string{"Wires", "Cables"}, r.Names())
}
