package wiretable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qet-wiremanager/internal/schematic"
)

func testWire(id string) schematic.LogicalWire {
	return schematic.LogicalWire{
		WireID:  id,
		FromRef: "X1",
		FromPin: "1",
		ToRef:   "X2",
		ToPin:   "3",
		Section: "1.5",
		Color:   "#FF0000",
	}
}

func TestWriteReadWire(t *testing.T) {
	s := NewSheet("Wires")
	w := testWire("1")
	w.Length = "123.45"
	w.Code = "AB12C3"

	WriteWire(s, FirstWireRow, w)
	assert.Equal(t, w, ReadWire(s, FirstWireRow))
	assert.Equal(t, "X1", s.Get("B2"))
	assert.Equal(t, "123.45", s.Get("H2"))
}

func TestAppendWires(t *testing.T) {
	s := NewSheet("Wires")
	first := AppendWires(s, []schematic.LogicalWire{testWire("1"), testWire("2")})

	assert.Equal(t, FirstWireRow, first)
	assert.Equal(t, "Wire", s.Get(Cell(ColWireID, HeaderRow)), "header row written on first append")
	assert.Equal(t, "1", s.Get("A2"))
	assert.Equal(t, "2", s.Get("A3"))
	assert.Equal(t, 2, WireRowCount(s))

	// appending again continues after the last occupied row
	first = AppendWires(s, []schematic.LogicalWire{testWire("3")})
	assert.Equal(t, 4, first)
	assert.Equal(t, 3, WireRowCount(s))
}

func TestNextFreeRow_Empty(t *testing.T) {
	s := NewSheet("Wires")
	require.Equal(t, FirstWireRow, NextFreeRow(s))
	assert.Equal(t, 0, WireRowCount(s))
}
