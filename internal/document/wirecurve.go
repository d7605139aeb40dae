package document

import (
	"qet-wiremanager/internal/curve"
	"qet-wiremanager/pkg/geometry"
)

// WireCurve is the geometric representation of one wire table row: a
// smooth curve through mutable control points. Besides its display label
// it carries an independent secondary label holding the sync key that
// binds it to the originating row.
type WireCurve struct {
	name      string
	syncLabel string
	points    []geometry.Point3D
	color     *[3]float64
}

// NewWireCurve creates a curve with the given display label and control
// points.
func NewWireCurve(label string, points []geometry.Point3D) *WireCurve {
	c := &WireCurve{name: label}
	c.SetControlPoints(points)
	return c
}

// Label returns the curve's display label.
func (c *WireCurve) Label() string { return c.name }

// SetLabel changes the curve's display label.
func (c *WireCurve) SetLabel(label string) { c.name = label }

// SyncLabel returns the secondary label carrying the sync key, or "".
func (c *WireCurve) SyncLabel() string { return c.syncLabel }

// SetSyncLabel stores the sync key on the curve.
func (c *WireCurve) SetSyncLabel(key string) { c.syncLabel = key }

// ControlPoints returns a copy of the ordered control points.
func (c *WireCurve) ControlPoints() []geometry.Point3D {
	points := make([]geometry.Point3D, len(c.points))
	copy(points, c.points)
	return points
}

// PointCount returns the number of control points.
func (c *WireCurve) PointCount() int { return len(c.points) }

// SetControlPoint overwrites the control point at index i.
func (c *WireCurve) SetControlPoint(i int, pt geometry.Point3D) {
	c.points[i] = pt
}

// SetControlPoints replaces the whole control-point sequence.
func (c *WireCurve) SetControlPoints(points []geometry.Point3D) {
	c.points = make([]geometry.Point3D, len(points))
	copy(c.points, points)
}

// SetColor sets the stroke color from unit-interval RGB components.
func (c *WireCurve) SetColor(r, g, b float64) {
	c.color = &[3]float64{r, g, b}
}

// Color returns the stroke color and whether one has been set.
func (c *WireCurve) Color() ([3]float64, bool) {
	if c.color == nil {
		return [3]float64{}, false
	}
	return *c.color, true
}

// Length measures the curve's total arc length.
func (c *WireCurve) Length() float64 {
	return curve.Length(c.points)
}
