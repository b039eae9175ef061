package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrect_PureTranslation(t *testing.T) {
	in := Inputs{
		ToolInBase:      NewPose(0, 0, 0, 0, 0, 0),
		CameraInUser:    NewPose(100, 0, 0, 0, 0, 0),
		ReferenceInUser: NewPose(150, 0, 0, 0, 0, 0),
		ActualInUser:    NewPose(160, 10, 0, 0, 0, 0),
	}

	c := Correct(in)

	assertPoseInDelta(t, NewPose(50, 0, 0, 0, 0, 0), c.ReferenceInTool, 1e-12)
	assertPoseInDelta(t, NewPose(60, 10, 0, 0, 0, 0), c.ActualInTool, 1e-12)
	assertPoseInDelta(t, NewPose(10, 10, 0, 0, 0, 0), c.Tool, 1e-12)
	assert.InDelta(t, 0, c.Residual.Max(), 1e-12)

	// With no rotation anywhere the intermediate chain is exact.
	x, y, z := Compose(TransformFromPose(in.ToolInBase), TransformFromPose(c.ActualInTool)).Translation()
	assert.Equal(t, [3]float64{60, 10, 0}, [3]float64{x, y, z})
}

func TestCorrect_ZeroDrift(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
	}{
		{
			name: "rotated tool and camera",
			in: Inputs{
				ToolInBase:      NewPose(12, -3, 140, 5, -10, 30),
				CameraInUser:    NewPose(400, 250, 300, 180, 0, 90),
				ReferenceInUser: NewPose(420, 260, 0, 0, 0, 15),
			},
		},
		{
			name: "identity tool",
			in: Inputs{
				ToolInBase:      NewPose(0, 0, 0, 0, 0, 0),
				CameraInUser:    NewPose(-80, 35, 500, 0, 0, -45),
				ReferenceInUser: NewPose(-60, 40, 10, 0, 0, 120),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.ActualInUser = tt.in.ReferenceInUser
			c := Correct(tt.in)

			assertPoseInDelta(t, tt.in.ToolInBase, c.Tool, eps)
			assert.InDelta(t, 0, c.Residual.Max(), eps)
		})
	}
}

func TestCorrect_ResidualNearZero(t *testing.T) {
	in := Inputs{
		ToolInBase:      NewPose(1.5, 2.25, 180.0, 0.5, -1.2, 45),
		CameraInUser:    NewPose(612.4, -118.9, 420.0, 179.2, 0.4, -88.1),
		ReferenceInUser: NewPose(600.1, -120.3, 5.0, 0, 0, 12.5),
		ActualInUser:    NewPose(603.7, -116.0, 5.0, 0, 0, 14.1),
	}

	c := Correct(in)
	assert.InDelta(t, 0, c.Residual.DX, eps)
	assert.InDelta(t, 0, c.Residual.DY, eps)
	assert.InDelta(t, 0, c.Residual.DR, eps)

	// UT2 must see C2 exactly where UT1 saw C1.
	tUF1UT0 := Compose(TransformFromPose(in.CameraInUser), TransformFromPose(in.ToolInBase).Inverse())
	tUF1UT2 := Compose(tUF1UT0, TransformFromPose(c.Tool))
	seen := Compose(tUF1UT2.Inverse(), TransformFromPose(in.ActualInUser)).Pose()
	assertPoseInDelta(t, c.ReferenceInTool, seen, 1e-8)
}

func TestCorrect_NotRounded(t *testing.T) {
	in := Inputs{
		CameraInUser:    NewPose(100, 0, 0, 0, 0, 0),
		ReferenceInUser: NewPose(150, 0, 0, 0, 0, 0),
		ActualInUser:    NewPose(150.12345678, 0.00004321, 0, 0, 0, 0),
	}

	c := Correct(in)
	assert.InDelta(t, 0.12345678, c.Tool.X, 1e-12)
	assert.InDelta(t, 0.00004321, c.Tool.Y, 1e-12)
}

func TestCorrectChecked(t *testing.T) {
	in := Inputs{
		ToolInBase:      NewPose(1, 2, 3, 4, 5, 6),
		CameraInUser:    NewPose(100, 0, 0, 0, 0, 0),
		ReferenceInUser: NewPose(150, 0, 0, 0, 0, 0),
		ActualInUser:    NewPose(160, 10, 0, 0, 0, 3),
	}

	got, err := CorrectChecked(in, 1e-9)
	require.NoError(t, err)
	if diff := cmp.Diff(Correct(in), got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("checked result differs (-want +got):\n%s", diff)
	}

	in.ActualInUser.W = math.Inf(1)
	_, err = CorrectChecked(in, 1e-9)
	if !errors.Is(err, ErrMalformedRigidTransform) {
		t.Fatalf("expected ErrMalformedRigidTransform, got %v", err)
	}
	assert.Contains(t, err.Error(), "actual_in_user")
}
