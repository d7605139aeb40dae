package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qet-wiremanager/pkg/geometry"
)

func TestDocument_SaveLoadRoundTrip(t *testing.T) {
	doc := testDocument()

	c := NewWireCurve("Wire 1", []geometry.Point3D{
		{X: 0, Y: 0, Z: 0},
		{X: 5, Y: 5, Z: 0},
		{X: 10, Y: 0, Z: 0},
	})
	c.SetSyncLabel("Wires:2:AB12C3")
	c.SetColor(1, 0, 0)
	doc.Add(c)

	path := filepath.Join(t.TempDir(), "panel.json")
	require.NoError(t, doc.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "panel", loaded.Name)

	// containers and nesting survive
	x1, ok := Find(loaded, "X1")
	require.True(t, ok)
	body, ok := x1.(*Body)
	require.True(t, ok)
	pin, ok := Find(body, "1")
	require.True(t, ok)
	feature, ok := pin.(PointProvider)
	require.True(t, ok)
	assert.Equal(t, geometry.Point3D{X: 1, Y: 2, Z: 3}, feature.Points()[0])

	// curves survive with sync label and color
	curve := loaded.FindCurve("Wire 1")
	require.NotNil(t, curve)
	assert.Equal(t, "Wires:2:AB12C3", curve.SyncLabel())
	assert.Equal(t, c.ControlPoints(), curve.ControlPoints())
	rgb, hasColor := curve.Color()
	require.True(t, hasColor)
	assert.Equal(t, [3]float64{1, 0, 0}, rgb)
}

func TestLoad_UnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	data := `{"version":1,"name":"x","objects":[{"type":"gear","label":"G1"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWireCurve_ControlPointsAreCopied(t *testing.T) {
	src := []geometry.Point3D{{X: 1}, {X: 2}}
	c := NewWireCurve("w", src)

	src[0].X = 99
	assert.Equal(t, 1.0, c.ControlPoints()[0].X, "curve must own its points")

	got := c.ControlPoints()
	got[1].X = 42
	assert.Equal(t, 2.0, c.ControlPoints()[1].X, "accessor must hand out a copy")

	c.SetControlPoint(0, geometry.Point3D{X: 7})
	assert.Equal(t, 7.0, c.ControlPoints()[0].X)
}
