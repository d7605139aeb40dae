package curve

import (
	"gonum.org/v1/gonum/interp"

	"qet-wiremanager/pkg/geometry"
)

// lengthSamplesPerSegment controls how finely the spline is sampled when
// summing segment lengths. 32 keeps the error well below the two
// decimals written back to the table.
const lengthSamplesPerSegment = 32

// Length measures the arc length of the smooth curve through the control
// points: a natural cubic spline per axis over chord-length parameters,
// sampled and summed. Degenerate parameterizations (coincident
// neighboring points) fall back to the straight polyline length.
func Length(points []geometry.Point3D) float64 {
	if len(points) < 2 {
		return 0
	}
	if len(points) == 2 {
		return points[0].Distance(points[1])
	}

	ts := make([]float64, len(points))
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	zs := make([]float64, len(points))
	for i, p := range points {
		if i > 0 {
			d := points[i-1].Distance(p)
			if d == 0 {
				return geometry.PolylineLength(points)
			}
			ts[i] = ts[i-1] + d
		}
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}

	var sx, sy, sz interp.NaturalCubic
	if sx.Fit(ts, xs) != nil || sy.Fit(ts, ys) != nil || sz.Fit(ts, zs) != nil {
		return geometry.PolylineLength(points)
	}

	samples := lengthSamplesPerSegment * (len(points) - 1)
	span := ts[len(ts)-1]
	prev := points[0]
	var total float64
	for i := 1; i <= samples; i++ {
		t := span * float64(i) / float64(samples)
		p := geometry.Point3D{X: sx.Predict(t), Y: sy.Predict(t), Z: sz.Predict(t)}
		total += prev.Distance(p)
		prev = p
	}
	return total
}
