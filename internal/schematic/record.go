// Package schematic reads conductor exports from the schematic editor and
// resolves them into logical wire connections.
package schematic

// Sentinel element names marking the two halves of an off-page connector
// pair. Two conductor records sharing a wire id, one attached to a going
// arrow and one to a coming arrow, describe a single logical wire.
const (
	GoingArrow  = "Going arrow"
	ComingArrow = "Coming arrow"
)

// RawConductor is one conductor record from a schematic export: either a
// direct point-to-point wire or one leg of an arrow-indirected pair.
// Missing attributes simply stay empty.
type RawConductor struct {
	WireID         string `xml:"wire_id,attr" json:"wire_id"`
	Element1Name   string `xml:"element1_name,attr" json:"element1_name"`
	Element2Name   string `xml:"element2_name,attr" json:"element2_name"`
	Element1Label  string `xml:"element1_label,attr" json:"element1_label"`
	Element2Label  string `xml:"element2_label,attr" json:"element2_label"`
	Element1Linked string `xml:"element1_linked,attr" json:"element1_linked,omitempty"`
	Element2Linked string `xml:"element2_linked,attr" json:"element2_linked,omitempty"`
	TerminalName1  string `xml:"terminal_name1,attr" json:"terminal_name1"`
	TerminalName2  string `xml:"terminal_name2,attr" json:"terminal_name2"`
	Color          string `xml:"conductor_color,attr" json:"conductor_color"`
	Section        string `xml:"conductor_section,attr" json:"conductor_section"`
}

// hasArrow reports whether either side of the record names an arrow sentinel.
func (r RawConductor) hasArrow() bool {
	return r.Element1Name == GoingArrow || r.Element1Name == ComingArrow ||
		r.Element2Name == GoingArrow || r.Element2Name == ComingArrow
}

// LogicalWire is a fully resolved wire connection with both endpoints
// known, the unit persisted as one table row. Length and Code are filled
// in later by the curve sync operations.
type LogicalWire struct {
	WireID  string `json:"wire_id"`
	FromRef string `json:"from_ref"`
	FromPin string `json:"from_pin"`
	ToRef   string `json:"to_ref"`
	ToPin   string `json:"to_pin"`
	Section string `json:"section"`
	Color   string `json:"color"`
	Length  string `json:"length,omitempty"`
	Code    string `json:"code,omitempty"`
}
