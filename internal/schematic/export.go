package schematic

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
)

// ErrNoConductors is returned when an export file contains no conductor
// records at all.
var ErrNoConductors = errors.New("no conductor records in export")

// conductorExport mirrors the flat conductor-list XML written by the
// schematic editor's export. Every record is a single element whose
// attributes match the RawConductor fields.
type conductorExport struct {
	XMLName    xml.Name       `xml:"conductors"`
	Conductors []RawConductor `xml:"conductor"`
}

// ReadExport parses a conductor export file into raw records.
// Attributes absent from a record are left empty.
func ReadExport(path string) ([]RawConductor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseExport(data)
}

// ParseExport parses conductor export XML.
func ParseExport(data []byte) ([]RawConductor, error) {
	var exp conductorExport
	if err := xml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parse conductor export: %w", err)
	}
	if len(exp.Conductors) == 0 {
		return nil, ErrNoConductors
	}
	return exp.Conductors, nil
}
