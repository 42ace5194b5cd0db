package pinwheel

import (
	"fmt"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is an immutable point or direction in scene space.
type Vector vec3d.T

var (
	XAxis = Vector{1, 0, 0}
	YAxis = Vector{0, 1, 0}
	ZAxis = Vector{0, 0, 1}
)

func Zeroes() Vector {
	return Vector(vec3d.Zero)
}

// From builds a Vector from up to three components; missing ones are zero.
func From(c []float64) Vector {
	var v Vector
	copy(v[:], c)
	return v
}

func (v Vector) X() float64 { return v[0] }
func (v Vector) Y() float64 { return v[1] }
func (v Vector) Z() float64 { return v[2] }

func (v Vector) Add(o Vector) Vector {
	s := vec3d.T(v)
	s.Add((*vec3d.T)(&o))
	return Vector(s)
}

func (v Vector) Subtract(o Vector) Vector {
	s := vec3d.T(v)
	s.Sub((*vec3d.T)(&o))
	return Vector(s)
}

func (v Vector) Scale(f float64) Vector {
	return Vector{v[0] * f, v[1] * f, v[2] * f}
}

func (v Vector) Dot(o Vector) float64 {
	return r3.Dot(v.r3(), o.r3())
}

func (v Vector) Cross(o Vector) Vector {
	return fromR3(r3.Cross(v.r3(), o.r3()))
}

func (v Vector) Length() float64 {
	return r3.Norm(v.r3())
}

func (v Vector) Normalize() Vector {
	if v.Length() == 0 {
		return v
	}
	return fromR3(r3.Unit(v.r3()))
}

// Transform applies m to the homogeneous extension of v and returns the
// dehomogenized result.
func (v Vector) Transform(m *Transform) Vector {
	return m.Apply(v)
}

// RotateAround rotates v by angle radians about the axis passing through
// pivot. The rotation follows the right-hand rule around axis.
func (v Vector) RotateAround(pivot, axis Vector, angle float64) Vector {
	rel := v.Subtract(pivot)
	return fromR3(r3.Rotate(rel.r3(), angle, axis.r3())).Add(pivot)
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

func (v Vector) r3() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

func fromR3(p r3.Vec) Vector {
	return Vector{p.X, p.Y, p.Z}
}
