package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-9

var samplePoses = []Pose{
	NewPose(0, 0, 0, 0, 0, 0),
	NewPose(100, -50, 25, 10, 20, 30),
	NewPose(-12.5, 480, 903.25, -45, 60, 170),
	NewPose(1, 2, 3, 179, -89, -179),
	NewPose(350.125, -0.001, 12, -120, 5, 90),
}

func assertPoseInDelta(t *testing.T, exp, act Pose, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	for c := ComponentX; c <= ComponentR; c++ {
		assert.InDelta(t, exp.Get(c), act.Get(c), delta, append([]interface{}{"component " + c.String()}, msgAndArgs...)...)
	}
}

func assertTransformInDelta(t *testing.T, exp, act Transform, delta float64) {
	t.Helper()
	e, a := exp.Elements(), act.Elements()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(e[r][c]-a[r][c]) > delta {
				t.Errorf("m%d%d is %v, expected %v", r, c, a[r][c], e[r][c])
			}
		}
	}
}

func TestTransformFromPose_Elements(t *testing.T) {
	m := TransformFromPose(NewPose(1, 2, 3, 90, 0, 0)).Elements()

	exp := [4][4]float64{
		{1, 0, 0, 1},
		{0, 0, -1, 2},
		{0, 1, 0, 3},
		{0, 0, 0, 1},
	}
	for r, row := range m {
		for c, val := range row {
			assert.InDelta(t, exp[r][c], val, 1e-15, "m%d%d", r, c)
		}
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	for i, p := range samplePoses {
		assertPoseInDelta(t, p, TransformFromPose(p).Pose(), eps, "example %d", i+1)
	}
}

func TestTransform_SingularBranch(t *testing.T) {
	// At pitch 90° only R-W is observable: W is forced to 0 and folded into R.
	got := TransformFromPose(NewPose(5, 6, 7, 30, 90, 0)).Pose()

	assert.Equal(t, 0.0, got.W)
	assert.InDelta(t, 90, got.P, eps)
	assert.InDelta(t, -30, got.R, eps)
	assert.Equal(t, [3]float64{5, 6, 7}, [3]float64{got.X, got.Y, got.Z})

	// The extracted pose still describes the same rotation.
	assertTransformInDelta(t, TransformFromPose(NewPose(5, 6, 7, 30, 90, 0)), TransformFromPose(got), eps)
}

func TestTransform_InverseIsIdentity(t *testing.T) {
	for _, p := range samplePoses {
		tr := TransformFromPose(p)
		assertTransformInDelta(t, Identity(), Compose(tr, tr.Inverse()), eps)
		assertTransformInDelta(t, Identity(), Compose(tr.Inverse(), tr), eps)
	}
}

func TestTransform_InverseMatchesGeneralInverse(t *testing.T) {
	for _, p := range samplePoses {
		tr := TransformFromPose(p)

		var general mat.Dense
		if err := general.Inverse(tr.Dense()); err != nil {
			t.Fatalf("gonum inverse: %v", err)
		}
		if !mat.EqualApprox(&general, tr.Inverse().Dense(), eps) {
			t.Errorf("rigid inverse differs from general inverse for %v", p)
		}
	}
}

func TestTransform_DoubleInverse(t *testing.T) {
	for _, p := range samplePoses {
		tr := TransformFromPose(p)
		assertTransformInDelta(t, tr, tr.Inverse().Inverse(), eps)
	}
}

func TestTransform_Associativity(t *testing.T) {
	a := TransformFromPose(samplePoses[1])
	b := TransformFromPose(samplePoses[2])
	c := TransformFromPose(samplePoses[4])

	assertTransformInDelta(t, Compose(Compose(a, b), c), Compose(a, Compose(b, c)), eps)
	assertTransformInDelta(t, a.Mul(b).Mul(c), Compose(a, Compose(b, c)), eps)
}

func TestCompose_PureTranslations(t *testing.T) {
	a := TransformFromPose(NewPose(1, 2, 3, 0, 0, 0))
	b := TransformFromPose(NewPose(10, 20, 30, 0, 0, 0))

	x, y, z := Compose(a, b).Translation()
	assert.Equal(t, [3]float64{11, 22, 33}, [3]float64{x, y, z})
}

func TestIsRigid(t *testing.T) {
	for _, p := range samplePoses {
		assert.True(t, TransformFromPose(p).IsRigid(1e-9), "pose %v", p)
	}

	nan := TransformFromPose(NewPose(0, 0, 0, math.NaN(), 0, 0))
	assert.False(t, nan.IsRigid(1e-9))

	var zero Transform
	assert.False(t, zero.IsRigid(1e-9))
}
