package wiretable

import (
	"encoding/json"
	"fmt"
	"os"
)

// Sheet is an in-memory Store persisted as a JSON file.
type Sheet struct {
	name  string
	cells map[string]string
}

// NewSheet creates an empty sheet with the given name.
func NewSheet(name string) *Sheet {
	return &Sheet{
		name:  name,
		cells: make(map[string]string),
	}
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Set writes a cell value. Setting "" clears the cell.
func (s *Sheet) Set(cell, value string) {
	if value == "" {
		delete(s.cells, cell)
		return
	}
	s.cells[cell] = value
}

// Get reads a cell value, or "" for an empty cell.
func (s *Sheet) Get(cell string) string {
	return s.cells[cell]
}

// HasContent reports whether the cell holds a non-empty value.
func (s *Sheet) HasContent(cell string) bool {
	return s.cells[cell] != ""
}

// sheetFile is the JSON structure of a saved sheet.
type sheetFile struct {
	Version int               `json:"version"`
	Name    string            `json:"name"`
	Cells   map[string]string `json:"cells"`
}

// LoadSheet reads a sheet from a JSON file.
func LoadSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sf sheetFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse sheet %s: %w", path, err)
	}

	s := NewSheet(sf.Name)
	for cell, value := range sf.Cells {
		s.cells[cell] = value
	}
	return s, nil
}

// Save writes the sheet to a JSON file.
func (s *Sheet) Save(path string) error {
	sf := sheetFile{
		Version: 1,
		Name:    s.name,
		Cells:   s.cells,
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
