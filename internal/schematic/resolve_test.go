package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_DirectWire(t *testing.T) {
	records := []RawConductor{{
		WireID:        "7",
		Element1Name:  "Term",
		Element1Label: "X1",
		TerminalName1: "2",
		Element2Name:  "Relay",
		Element2Label: "K1",
		TerminalName2: "A1",
		Section:       "1.5",
		Color:         "#000000",
	}}

	wires := Resolve(records)
	require.Len(t, wires, 1)
	assert.Equal(t, "X1", wires[0].FromRef)
	assert.Equal(t, "2", wires[0].FromPin)
	assert.Equal(t, "K1", wires[0].ToRef)
	assert.Equal(t, "A1", wires[0].ToPin)
	assert.Equal(t, "1.5", wires[0].Section)
	assert.Equal(t, "#000000", wires[0].Color)
}

func TestResolve_LinkedAttributeWins(t *testing.T) {
	records := []RawConductor{{
		WireID:         "3",
		Element1Name:   "Term",
		Element1Label:  "X9",
		Element1Linked: "X1",
		TerminalName1:  "4",
		Element2Name:   "Term",
		Element2Label:  "X2",
		TerminalName2:  "1",
	}}

	wires := Resolve(records)
	require.Len(t, wires, 1)
	assert.Equal(t, "X1", wires[0].FromRef, "linked attribute must take precedence over the label")
	assert.Equal(t, "X2", wires[0].ToRef)
}

func TestResolve_ArrowPair(t *testing.T) {
	going := RawConductor{
		WireID:        "1",
		Element1Name:  GoingArrow,
		Element2Name:  "Term",
		Element2Label: "X1",
		TerminalName2: "1",
		Color:         "#FF0000",
		Section:       "1.5",
	}
	coming := RawConductor{
		WireID:        "1",
		Element1Name:  ComingArrow,
		Element2Name:  "Term",
		Element2Label: "X2",
		TerminalName2: "3",
	}

	want := LogicalWire{
		WireID:  "1",
		FromRef: "X1",
		FromPin: "1",
		ToRef:   "X2",
		ToPin:   "3",
		Section: "1.5",
		Color:   "#FF0000",
	}

	// Merging must not depend on leg order.
	wires := Resolve([]RawConductor{going, coming})
	require.Len(t, wires, 1)
	assert.Equal(t, want, wires[0])

	wires = Resolve([]RawConductor{coming, going})
	require.Len(t, wires, 1)
	assert.Equal(t, want, wires[0])
}

func TestResolve_ArrowOnSecondSide(t *testing.T) {
	records := []RawConductor{
		{
			WireID:        "5",
			Element1Name:  "Term",
			Element1Label: "X3",
			TerminalName1: "6",
			Element2Name:  GoingArrow,
		},
		{
			WireID:        "5",
			Element1Name:  "Relay",
			Element1Label: "K2",
			TerminalName1: "A2",
			Element2Name:  ComingArrow,
		},
	}

	wires := Resolve(records)
	require.Len(t, wires, 1)
	assert.Equal(t, "X3", wires[0].FromRef)
	assert.Equal(t, "6", wires[0].FromPin)
	assert.Equal(t, "K2", wires[0].ToRef)
	assert.Equal(t, "A2", wires[0].ToPin)
}

func TestResolve_UnpairedArrowLegDropped(t *testing.T) {
	records := []RawConductor{{
		WireID:        "9",
		Element1Name:  GoingArrow,
		Element2Name:  "Term",
		Element2Label: "X1",
		TerminalName2: "1",
	}}

	wires := Resolve(records)
	assert.Empty(t, wires, "a wire with only one side resolved must never be persisted")
}

func TestResolve_NeverEmitsEmptyRefs(t *testing.T) {
	records := []RawConductor{
		{WireID: "1"}, // nothing resolvable at all
		{WireID: "2", Element1Name: "Term", Element1Label: "X1", Element2Name: "Term"}, // missing to side
		{WireID: "3", Element1Name: GoingArrow, Element2Label: "X5"},
	}

	for _, w := range Resolve(records) {
		assert.NotEmpty(t, w.FromRef)
		assert.NotEmpty(t, w.ToRef)
	}
	assert.Empty(t, Resolve(records))
}

func TestResolve_ExtraLegsLastWriteWins(t *testing.T) {
	records := []RawConductor{
		{WireID: "4", Element1Name: GoingArrow, Element2Name: "Term", Element2Label: "X1", TerminalName2: "1"},
		{WireID: "4", Element1Name: ComingArrow, Element2Name: "Term", Element2Label: "X2", TerminalName2: "2"},
		// malformed third leg re-stating the from side
		{WireID: "4", Element1Name: GoingArrow, Element2Name: "Term", Element2Label: "X7", TerminalName2: "9"},
	}

	wires := Resolve(records)
	require.Len(t, wires, 1)
	assert.Equal(t, "X7", wires[0].FromRef)
	assert.Equal(t, "9", wires[0].FromPin)
	assert.Equal(t, "X2", wires[0].ToRef)
}

func TestResolve_Ordering(t *testing.T) {
	records := []RawConductor{
		{WireID: "20", Element1Name: GoingArrow, Element2Name: "Term", Element2Label: "X1", TerminalName2: "1"},
		{WireID: "10", Element1Name: "Term", Element1Label: "A", TerminalName1: "1", Element2Name: "Term", Element2Label: "B", TerminalName2: "2"},
		{WireID: "30", Element1Name: GoingArrow, Element2Name: "Term", Element2Label: "X3", TerminalName2: "3"},
		{WireID: "30", Element1Name: ComingArrow, Element2Name: "Term", Element2Label: "X4", TerminalName2: "4"},
		{WireID: "11", Element1Name: "Term", Element1Label: "C", TerminalName1: "1", Element2Name: "Term", Element2Label: "D", TerminalName2: "2"},
		{WireID: "20", Element1Name: ComingArrow, Element2Name: "Term", Element2Label: "X2", TerminalName2: "2"},
	}

	wires := Resolve(records)
	require.Len(t, wires, 4)
	// direct wires first in input order, then arrow wires in first-seen id order
	assert.Equal(t, "10", wires[0].WireID)
	assert.Equal(t, "11", wires[1].WireID)
	assert.Equal(t, "20", wires[2].WireID)
	assert.Equal(t, "30", wires[3].WireID)
}
