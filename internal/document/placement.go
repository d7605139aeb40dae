package document

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"qet-wiremanager/pkg/geometry"
)

// Placement positions an object in the global frame: an axis-angle
// rotation followed by a translation.
type Placement struct {
	Position geometry.Point3D `json:"position"`
	Axis     geometry.Point3D `json:"axis"`
	Angle    float64          `json:"angle"` // degrees
}

// IdentityPlacement returns the no-op placement.
func IdentityPlacement() Placement {
	return Placement{Axis: geometry.Point3D{Z: 1}}
}

// ToGlobal transforms a point from the object's local frame into global
// coordinates.
func (p Placement) ToGlobal(pt geometry.Point3D) geometry.Point3D {
	r := p.rotationMatrix()
	if r == nil {
		return pt.Add(p.Position)
	}

	v := mat.NewVecDense(3, []float64{pt.X, pt.Y, pt.Z})
	var out mat.VecDense
	out.MulVec(r, v)
	return geometry.Point3D{
		X: out.AtVec(0) + p.Position.X,
		Y: out.AtVec(1) + p.Position.Y,
		Z: out.AtVec(2) + p.Position.Z,
	}
}

// rotationMatrix builds the 3x3 rotation matrix for the axis-angle pair
// via Rodrigues' formula. Returns nil for a no-op rotation.
func (p Placement) rotationMatrix() *mat.Dense {
	n := p.Axis.Norm()
	if n == 0 || p.Angle == 0 {
		return nil
	}

	u := p.Axis.Scale(1 / n)
	th := p.Angle * math.Pi / 180
	c := math.Cos(th)
	s := math.Sin(th)
	k := 1 - c

	return mat.NewDense(3, 3, []float64{
		c + u.X*u.X*k, u.X*u.Y*k - u.Z*s, u.X*u.Z*k + u.Y*s,
		u.Y*u.X*k + u.Z*s, c + u.Y*u.Y*k, u.Y*u.Z*k - u.X*s,
		u.Z*u.X*k - u.Y*s, u.Z*u.Y*k + u.X*s, c + u.Z*u.Z*k,
	})
}
