package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoseFromList(t *testing.T) {
	p, err := PoseFromList([]float64{1.5, -2, 3, 10, -20, 179.999})
	require.NoError(t, err)
	assert.Equal(t, NewPose(1.5, -2, 3, 10, -20, 179.999), p)
	assert.Equal(t, []float64{1.5, -2, 3, 10, -20, 179.999}, p.List())
}

func TestPoseFromList_InvalidShape(t *testing.T) {
	for _, n := range []int{0, 1, 5, 7, 12} {
		_, err := PoseFromList(make([]float64, n))
		if !errors.Is(err, ErrInvalidPoseShape) {
			t.Errorf("len %d: expected ErrInvalidPoseShape, got %v", n, err)
		}
	}
}

func TestPoseWith(t *testing.T) {
	p := NewPose(1, 2, 3, 4, 5, 6)

	for c := ComponentX; c <= ComponentR; c++ {
		q := p.With(c, -99)
		assert.Equal(t, -99.0, q.Get(c), "component %s", c)
		assert.Equal(t, float64(c)+1, p.Get(c), "receiver must be untouched (%s)", c)
	}
}

func TestComponentString(t *testing.T) {
	assert.Equal(t, "W", ComponentW.String())
	assert.Equal(t, "Component(9)", Component(9).String())
}
