// Package curve provides control-point editing and arc-length
// measurement for smooth wire curves.
package curve

import (
	"errors"

	"qet-wiremanager/pkg/geometry"
)

// ErrInsufficientPoints is returned when an operation needs at least two
// control points.
var ErrInsufficientPoints = errors.New("need at least two control points")

// Densify returns a new control-point sequence with the midpoint of each
// neighboring pair inserted between them, for manual curve shaping.
// The first and last points are preserved exactly: endpoint refresh only
// ever touches index 0 and the last index, so densification must not
// disturb endpoint identity. The result has 2n-1 points.
func Densify(points []geometry.Point3D) ([]geometry.Point3D, error) {
	if len(points) < 2 {
		return nil, ErrInsufficientPoints
	}

	out := make([]geometry.Point3D, 0, 2*len(points)-1)
	for i, p := range points {
		out = append(out, p)
		if i < len(points)-1 {
			out = append(out, geometry.Midpoint(p, points[i+1]))
		}
	}
	return out, nil
}
