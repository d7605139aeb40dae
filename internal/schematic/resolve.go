package schematic

// Resolve turns raw conductor records into logical wires.
//
// Records without arrow sentinels become one wire each, in input order,
// with the linked attribute taking precedence over the plain label (a
// linked attribute identifies a reused terminal). Arrow-bearing records
// are merged by wire id: the going-arrow leg supplies the from side, the
// coming-arrow leg supplies the to side, each taken from the element
// opposite the arrow. Merged wires follow the direct ones, in first-seen
// wire-id order. A wire whose from or to reference never resolves is
// dropped. More than two legs per wire id is tolerated; later non-empty
// values win.
func Resolve(records []RawConductor) []LogicalWire {
	var direct []LogicalWire
	pending := make(map[string]*LogicalWire)
	var pendingOrder []string

	for _, r := range records {
		if !r.hasArrow() {
			w := LogicalWire{
				WireID:  r.WireID,
				FromRef: firstNonEmpty(r.Element1Linked, r.Element1Label),
				FromPin: r.TerminalName1,
				ToRef:   firstNonEmpty(r.Element2Linked, r.Element2Label),
				ToPin:   r.TerminalName2,
				Section: r.Section,
				Color:   r.Color,
			}
			if w.FromRef == "" || w.ToRef == "" {
				continue
			}
			direct = append(direct, w)
			continue
		}

		w, seen := pending[r.WireID]
		if !seen {
			w = &LogicalWire{WireID: r.WireID}
			pending[r.WireID] = w
			pendingOrder = append(pendingOrder, r.WireID)
		}
		switch {
		case r.Element1Name == GoingArrow:
			w.FromRef, w.FromPin = r.Element2Label, r.TerminalName2
		case r.Element2Name == GoingArrow:
			w.FromRef, w.FromPin = r.Element1Label, r.TerminalName1
		}
		switch {
		case r.Element1Name == ComingArrow:
			w.ToRef, w.ToPin = r.Element2Label, r.TerminalName2
		case r.Element2Name == ComingArrow:
			w.ToRef, w.ToPin = r.Element1Label, r.TerminalName1
		}
		if r.Section != "" {
			w.Section = r.Section
		}
		if r.Color != "" {
			w.Color = r.Color
		}
	}

	wires := direct
	for _, id := range pendingOrder {
		w := pending[id]
		if w.FromRef == "" || w.ToRef == "" {
			// only one arrow leg resolved; unusable endpoint
			continue
		}
		wires = append(wires, *w)
	}
	return wires
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
