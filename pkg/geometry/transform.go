package geometry

import (
	"fmt"
	"math"
)

// singularityThreshold is the cutoff on sqrt(M00²+M10²) below which pitch is
// treated as ±90° and W can no longer be recovered.
const singularityThreshold = 1e-12

// Transform is a 4x4 homogeneous transform, row-major. The bottom row is
// always [0 0 0 1] and the top-left 3x3 block is a pure rotation.
//
// There is deliberately no constructor from raw elements. Build one with
// TransformFromPose or derive it with Compose and Inverse.
type Transform struct {
	m [4][4]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// TransformFromPose builds the transform Rz(R)·Ry(P)·Rx(W) with the pose's
// position as translation.
func TransformFromPose(p Pose) Transform {
	w := rad(p.W)
	pp := rad(p.P)
	r := rad(p.R)

	cosR, sinR := math.Cos(r), math.Sin(r)
	cosP, sinP := math.Cos(pp), math.Sin(pp)
	cosW, sinW := math.Cos(w), math.Sin(w)

	var t Transform
	t.m[0][0] = cosR * cosP
	t.m[0][1] = cosR*sinP*sinW - sinR*cosW
	t.m[0][2] = cosR*sinP*cosW + sinR*sinW
	t.m[0][3] = p.X

	t.m[1][0] = sinR * cosP
	t.m[1][1] = sinR*sinP*sinW + cosR*cosW
	t.m[1][2] = sinR*sinP*cosW - cosR*sinW
	t.m[1][3] = p.Y

	t.m[2][0] = -sinP
	t.m[2][1] = cosP * sinW
	t.m[2][2] = cosP * cosW
	t.m[2][3] = p.Z

	t.m[3][3] = 1
	return t
}

// Pose extracts the pose from the transform.
//
// At the gimbal-lock singularity (pitch ±90°) only R - W is observable, so W
// is reported as 0 and the whole rotation about Z is put into R.
func (t Transform) Pose() Pose {
	m := &t.m
	p := Pose{X: m[0][3], Y: m[1][3], Z: m[2][3]}

	sy := math.Sqrt(m[0][0]*m[0][0] + m[1][0]*m[1][0])
	if sy >= singularityThreshold {
		p.R = math.Atan2(m[1][0], m[0][0])
		p.P = math.Atan2(-m[2][0], sy)
		p.W = math.Atan2(m[2][1], m[2][2])
	} else {
		p.R = math.Atan2(-m[0][1], m[1][1])
		p.P = math.Atan2(-m[2][0], sy)
		p.W = 0
	}

	p.W = deg(p.W)
	p.P = deg(p.P)
	p.R = deg(p.R)
	return p
}

// Compose returns the product a·b. If a maps frame B into frame A and b maps
// frame C into frame B, the result maps C into A.
func Compose(a, b Transform) Transform {
	var out Transform
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a.m[r][k] * b.m[k][c]
			}
			out.m[r][c] = sum
		}
	}
	return out
}

// Mul returns t·o.
func (t Transform) Mul(o Transform) Transform {
	return Compose(t, o)
}

// Inverse returns the inverse of a rigid transform: the rotation block is
// transposed and the translation becomes -Rᵀ·t. The result is meaningless if
// the rotation block is not orthonormal; nothing here checks that.
func (t Transform) Inverse() Transform {
	m := &t.m
	var inv Transform

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			inv.m[r][c] = m[c][r]
		}
	}

	for r := 0; r < 3; r++ {
		inv.m[r][3] = -(inv.m[r][0]*m[0][3] + inv.m[r][1]*m[1][3] + inv.m[r][2]*m[2][3])
	}

	inv.m[3][3] = 1
	return inv
}

// Translation returns the translation column.
func (t Transform) Translation() (x, y, z float64) {
	return t.m[0][3], t.m[1][3], t.m[2][3]
}

// Elements returns a copy of the matrix, row-major. Mostly useful for dumping
// its contents.
func (t Transform) Elements() [4][4]float64 {
	return t.m
}

func (t Transform) String() string {
	m := &t.m
	return fmt.Sprintf(
		"&T{%+.6f %+.6f %+.6f %+.4f | %+.6f %+.6f %+.6f %+.4f | %+.6f %+.6f %+.6f %+.4f | %g %g %g %g}",
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3],
		m[3][0], m[3][1], m[3][2], m[3][3])
}

func rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func deg(r float64) float64 {
	return r * 180.0 / math.Pi
}
