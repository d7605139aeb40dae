package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qet-wiremanager/internal/document"
	"qet-wiremanager/internal/schematic"
	"qet-wiremanager/internal/wiretable"
	"qet-wiremanager/pkg/geometry"
)

// testState returns a state whose document has two placed terminal
// bodies and whose default table holds one wire row connecting them.
func testState(t *testing.T) *State {
	t.Helper()
	s := NewState()

	x1 := document.NewBody("X1", document.IdentityPlacement())
	x1.Add(document.NewPinFeature("1", []geometry.Point3D{{X: 0, Y: 0, Z: 0}}))
	s.Doc.Add(x1)

	x2 := document.NewBody("X2", document.Placement{Position: geometry.Point3D{X: 100}})
	x2.Add(document.NewPinFeature("3", []geometry.Point3D{{X: 0, Y: 0, Z: 0}}))
	s.Doc.Add(x2)

	store, err := s.ActiveStore()
	require.NoError(t, err)
	wiretable.AppendWires(store, []schematic.LogicalWire{{
		WireID: "1", FromRef: "X1", FromPin: "1", ToRef: "X2", ToPin: "3",
	}})

	return s
}

func TestBuildSelectedCurve(t *testing.T) {
	s := testState(t)

	var built interface{}
	s.On(EventCurveBuilt, func(data interface{}) { built = data })

	s.SelectRow(wiretable.FirstWireRow)
	c, err := s.BuildSelectedCurve()
	require.NoError(t, err)
	assert.Same(t, c, s.SelectedCurve)
	assert.Same(t, c, built)
	assert.True(t, s.Modified)
	assert.Len(t, s.Doc.Curves(), 1)
}

func TestBuildSelectedCurve_NoSelection(t *testing.T) {
	s := testState(t)
	_, err := s.BuildSelectedCurve()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestRefreshAndMeasure(t *testing.T) {
	s := testState(t)
	s.SelectRow(wiretable.FirstWireRow)
	_, err := s.BuildSelectedCurve()
	require.NoError(t, err)

	require.NoError(t, s.RefreshCurve())
	require.NoError(t, s.MeasureCurve())

	store, err := s.ActiveStore()
	require.NoError(t, err)
	length := store.Get(wiretable.Cell(wiretable.ColLength, wiretable.FirstWireRow))
	assert.NotEmpty(t, length)
}

func TestMeasureCurve_NoSelection(t *testing.T) {
	s := testState(t)
	assert.ErrorIs(t, s.MeasureCurve(), ErrNoSelection)
	assert.ErrorIs(t, s.RefreshCurve(), ErrNoSelection)
	assert.ErrorIs(t, s.DensifyCurve(), ErrNoSelection)
}

func TestDensifyCurve(t *testing.T) {
	s := testState(t)
	s.SelectRow(wiretable.FirstWireRow)
	c, err := s.BuildSelectedCurve()
	require.NoError(t, err)

	require.NoError(t, s.DensifyCurve())
	assert.Equal(t, 5, c.PointCount())
}

func TestImportSchematic(t *testing.T) {
	s := testState(t)

	export := `<conductors>
  <conductor wire_id="7" element1_name="K1" element1_label="K1" terminal_name1="A1"
             element2_name="X9" element2_label="X9" terminal_name2="4"
             conductor_section="2.5" conductor_color="#0000FF"/>
</conductors>`
	path := filepath.Join(t.TempDir(), "export.xml")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o644))

	var imported interface{}
	s.On(EventWiresImported, func(data interface{}) { imported = data })

	n, err := s.ImportSchematic(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, imported)

	store, err := s.ActiveStore()
	require.NoError(t, err)
	// the fixture row occupies the first wire row, the import lands below
	w := wiretable.ReadWire(store, wiretable.FirstWireRow+1)
	assert.Equal(t, "7", w.WireID)
	assert.Equal(t, "K1", w.FromRef)
	assert.Equal(t, "4", w.ToPin)
}

func TestSaveLoadProjectRoundTrip(t *testing.T) {
	s := testState(t)
	s.SelectRow(wiretable.FirstWireRow)
	_, err := s.BuildSelectedCurve()
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "panel.qwmproj")
	require.NoError(t, s.SaveProject(path))
	assert.False(t, s.Modified)
	assert.Equal(t, path, s.ProjectPath)

	loaded := NewState()
	require.NoError(t, loaded.LoadProject(path))
	assert.Equal(t, DefaultTableName, loaded.ActiveTable)

	store, err := loaded.ActiveStore()
	require.NoError(t, err)
	w := wiretable.ReadWire(store, wiretable.FirstWireRow)
	assert.Equal(t, "1", w.WireID)

	require.Len(t, loaded.Doc.Curves(), 1)
	c := loaded.Doc.Curves()[0]
	assert.Equal(t, "Wire 1", c.Label())
	assert.NotEmpty(t, c.SyncLabel())

	// curves loaded from disk stay bound to their rows
	loaded.SelectCurve(c)
	require.NoError(t, loaded.RefreshCurve())
	require.NoError(t, loaded.MeasureCurve())
}

func TestLoadProject_Missing(t *testing.T) {
	s := NewState()
	assert.Error(t, s.LoadProject(filepath.Join(t.TempDir(), "nope.qwmproj")))
}
