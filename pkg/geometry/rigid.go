package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// IsRigid reports whether the rotation block is orthonormal with determinant
// +1 and the bottom row is [0 0 0 1], all within tol. It is a debugging aid;
// Inverse never calls it.
func (t Transform) IsRigid(tol float64) bool {
	m := &t.m
	if m[3][0] != 0 || m[3][1] != 0 || m[3][2] != 0 || math.Abs(m[3][3]-1) > tol {
		return false
	}

	rot := t.rotation()
	if det := mat.Det(rot); math.IsNaN(det) || math.Abs(det-1) > tol {
		return false
	}

	var rtr mat.Dense
	rtr.Mul(rot.T(), rot)
	return mat.EqualApprox(&rtr, eye3, tol)
}

var eye3 = mat.NewDiagDense(3, []float64{1, 1, 1})

func (t Transform) rotation() *mat.Dense {
	m := &t.m
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

// Dense returns the full matrix as a gonum Dense, for interop with other
// linear algebra code.
func (t Transform) Dense() *mat.Dense {
	m := &t.m
	return mat.NewDense(4, 4, []float64{
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3],
		m[3][0], m[3][1], m[3][2], m[3][3],
	})
}
