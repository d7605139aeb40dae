// Package wiretable provides the cell-addressed wire table: the store
// interface the sync logic writes through, an in-memory JSON-persisted
// sheet implementation, a registry of open tables, and the mapping
// between logical wires and rows.
package wiretable

import (
	"fmt"
)

// Column letters of the fixed wire table layout.
const (
	ColWireID  = "A"
	ColFromRef = "B"
	ColFromPin = "C"
	ColToRef   = "D"
	ColToPin   = "E"
	ColSection = "F"
	ColColor   = "G"
	ColLength  = "H"
	ColCode    = "I"
	ColCable   = "J"
)

// HeaderRow is the sheet row reserved for column titles.
// Wire rows start at FirstWireRow.
const (
	HeaderRow    = 1
	FirstWireRow = 2
)

// Store is the minimal cell surface the sync logic needs from a table.
// Cells are addressed as "{ColumnLetter}{RowNumber}", e.g. "B4".
type Store interface {
	// Name identifies the table; it is embedded in sync keys and must
	// not contain a colon.
	Name() string

	// Set writes a cell value.
	Set(cell, value string)

	// Get reads a cell value, or "" for an empty cell.
	Get(cell string) string

	// HasContent reports whether the cell holds a non-empty value.
	HasContent(cell string) bool
}

// Cell returns a cell address like "B4".
func Cell(column string, row int) string {
	return fmt.Sprintf("%s%d", column, row)
}
