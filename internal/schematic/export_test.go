package schematic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `<?xml version="1.0" encoding="utf-8"?>
<conductors>
  <conductor wire_id="1" element1_name="Going arrow" element2_name="Term" element2_label="X1" terminal_name2="1" conductor_color="#FF0000" conductor_section="1.5"/>
  <conductor wire_id="1" element1_name="Coming arrow" element2_name="Term" element2_label="X2" terminal_name2="3"/>
  <conductor wire_id="2" element1_name="Term" element1_label="X1" terminal_name1="4" element2_name="Relay" element2_label="K1" terminal_name2="A1" conductor_section="0.75"/>
</conductors>
`

func TestReadExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wires.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o644))

	records, err := ReadExport(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, GoingArrow, records[0].Element1Name)
	assert.Equal(t, "X1", records[0].Element2Label)
	assert.Equal(t, "#FF0000", records[0].Color)
	// absent attributes stay empty
	assert.Empty(t, records[0].Element1Label)
	assert.Empty(t, records[1].Color)

	wires := Resolve(records)
	require.Len(t, wires, 2)
	assert.Equal(t, "2", wires[0].WireID)
	assert.Equal(t, "1", wires[1].WireID)
	assert.Equal(t, "X1", wires[1].FromRef)
	assert.Equal(t, "X2", wires[1].ToRef)
}

func TestParseExport_Empty(t *testing.T) {
	_, err := ParseExport([]byte(`<conductors></conductors>`))
	assert.ErrorIs(t, err, ErrNoConductors)
}

func TestParseExport_Malformed(t *testing.T) {
	_, err := ParseExport([]byte(`not xml at all`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoConductors)
}

func TestReadExport_MissingFile(t *testing.T) {
	_, err := ReadExport(filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}
