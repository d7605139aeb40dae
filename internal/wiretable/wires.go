package wiretable

import (
	"qet-wiremanager/internal/schematic"
)

// wireColumns maps the column letters to header titles, in layout order.
var wireColumns = []struct {
	Column string
	Title  string
}{
	{ColWireID, "Wire"},
	{ColFromRef, "From"},
	{ColFromPin, "From pin"},
	{ColToRef, "To"},
	{ColToPin, "To pin"},
	{ColSection, "Section"},
	{ColColor, "Color"},
	{ColLength, "Length"},
	{ColCode, "Code"},
	{ColCable, "Cable"},
}

// WriteHeader writes the column titles into the header row.
func WriteHeader(st Store) {
	for _, wc := range wireColumns {
		st.Set(Cell(wc.Column, HeaderRow), wc.Title)
	}
}

// Columns returns the column letters in layout order.
func Columns() []string {
	cols := make([]string, len(wireColumns))
	for i, wc := range wireColumns {
		cols[i] = wc.Column
	}
	return cols
}

// HeaderTitles returns the column titles in layout order.
func HeaderTitles() []string {
	titles := make([]string, len(wireColumns))
	for i, wc := range wireColumns {
		titles[i] = wc.Title
	}
	return titles
}

// WriteWire stores a logical wire at the given row.
func WriteWire(st Store, row int, w schematic.LogicalWire) {
	st.Set(Cell(ColWireID, row), w.WireID)
	st.Set(Cell(ColFromRef, row), w.FromRef)
	st.Set(Cell(ColFromPin, row), w.FromPin)
	st.Set(Cell(ColToRef, row), w.ToRef)
	st.Set(Cell(ColToPin, row), w.ToPin)
	st.Set(Cell(ColSection, row), w.Section)
	st.Set(Cell(ColColor, row), w.Color)
	st.Set(Cell(ColLength, row), w.Length)
	st.Set(Cell(ColCode, row), w.Code)
}

// ReadWire reads the logical wire stored at the given row.
// Empty cells yield empty fields.
func ReadWire(st Store, row int) schematic.LogicalWire {
	return schematic.LogicalWire{
		WireID:  st.Get(Cell(ColWireID, row)),
		FromRef: st.Get(Cell(ColFromRef, row)),
		FromPin: st.Get(Cell(ColFromPin, row)),
		ToRef:   st.Get(Cell(ColToRef, row)),
		ToPin:   st.Get(Cell(ColToPin, row)),
		Section: st.Get(Cell(ColSection, row)),
		Color:   st.Get(Cell(ColColor, row)),
		Length:  st.Get(Cell(ColLength, row)),
		Code:    st.Get(Cell(ColCode, row)),
	}
}

// NextFreeRow returns the first row at or below FirstWireRow whose wire
// id cell is empty.
func NextFreeRow(st Store) int {
	row := FirstWireRow
	for st.HasContent(Cell(ColWireID, row)) {
		row++
	}
	return row
}

// AppendWires writes logical wires into consecutive rows after the last
// occupied one, adding the header row first when the table is empty.
// It returns the row number of the first wire written.
func AppendWires(st Store, wires []schematic.LogicalWire) int {
	if !st.HasContent(Cell(ColWireID, HeaderRow)) {
		WriteHeader(st)
	}
	first := NextFreeRow(st)
	for i, w := range wires {
		WriteWire(st, first+i, w)
	}
	return first
}

// WireRowCount returns the number of contiguous wire rows in the table.
func WireRowCount(st Store) int {
	return NextFreeRow(st) - FirstWireRow
}
