package pinwheel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transform is a 4x4 homogeneous rotation matrix in row-vector convention:
// a point v maps to [x y z 1]·M. Rotations compose onto the left of the
// current matrix, so each new rotation acts first in the object frame.
type Transform struct {
	m *mat.Dense
}

func Identity() *Transform {
	return &Transform{m: mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})}
}

func (t *Transform) RotX(theta float64) *Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	return t.compose(mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}))
}

func (t *Transform) RotY(theta float64) *Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	return t.compose(mat.NewDense(4, 4, []float64{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}))
}

func (t *Transform) RotZ(theta float64) *Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	return t.compose(mat.NewDense(4, 4, []float64{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}))
}

func (t *Transform) compose(r *mat.Dense) *Transform {
	t.m.Mul(r, t.m)
	return t
}

// Apply returns v transformed by t.
func (t *Transform) Apply(v Vector) Vector {
	var out mat.VecDense
	out.MulVec(t.m.T(), mat.NewVecDense(4, []float64{v[0], v[1], v[2], 1}))

	w := out.AtVec(3)
	if w == 0 || w == 1 {
		return Vector{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
	}
	return Vector{out.AtVec(0) / w, out.AtVec(1) / w, out.AtVec(2) / w}
}

func (t *Transform) At(i, j int) float64 {
	return t.m.At(i, j)
}

func (t *Transform) Clone() *Transform {
	var m mat.Dense
	m.CloneFrom(t.m)
	return &Transform{m: &m}
}

// IsOrthogonal reports whether the rotation block is orthonormal and the
// translation row is empty, within tol.
func (t *Transform) IsOrthogonal(tol float64) bool {
	r := t.m.Slice(0, 3, 0, 3)

	var p mat.Dense
	p.Mul(r, r.T())
	eye := mat.NewDiagDense(3, []float64{1, 1, 1})
	if !mat.EqualApprox(&p, eye, tol) {
		return false
	}
	for j := 0; j < 3; j++ {
		if math.Abs(t.m.At(3, j)) > tol || math.Abs(t.m.At(j, 3)) > tol {
			return false
		}
	}
	return true
}
