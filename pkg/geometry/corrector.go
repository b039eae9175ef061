package geometry

import (
	"fmt"
	"math"
)

// Inputs are the four poses the tool-frame shift is computed from.
type Inputs struct {
	// ToolInBase is the nominal tool frame UT1 relative to the base tool
	// frame UT0.
	ToolInBase Pose `json:"tool_in_base"`

	// CameraInUser is UT1 expressed in the reference user frame UF1 at
	// calibration time (the camera pose).
	CameraInUser Pose `json:"camera_in_user"`

	// ReferenceInUser is the template workpiece C1 in UF1, captured at
	// calibration time.
	ReferenceInUser Pose `json:"reference_in_user"`

	// ActualInUser is the workpiece C2 in UF1 as currently detected.
	ActualInUser Pose `json:"actual_in_user"`
}

// Residual holds the absolute X, Y and R differences between the template
// workpiece seen from UT1 and the detected workpiece seen from the corrected
// frame UT2. It is near zero whenever the algebra is self-consistent.
type Residual struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
	DR float64 `json:"dr"`
}

// Max returns the largest of the three differences.
func (r Residual) Max() float64 {
	return math.Max(r.DX, math.Max(r.DY, r.DR))
}

func (r Residual) String() string {
	return fmt.Sprintf("ΔX=%.12e, ΔY=%.12e, ΔR=%.12e", r.DX, r.DY, r.DR)
}

// Correction is the result of a tool-frame shift.
type Correction struct {
	// Tool is the corrected tool frame UT2 relative to UT0. It is carried at
	// full precision and never rounded.
	Tool Pose `json:"tool"`

	Residual Residual `json:"residual"`

	// ReferenceInTool and ActualInTool are C1 and C2 seen from UT1.
	ReferenceInTool Pose `json:"reference_in_tool"`
	ActualInTool    Pose `json:"actual_in_tool"`
}

// Correct computes the tool frame UT2 for which the detected workpiece sits
// where the template workpiece sat relative to UT1.
func Correct(in Inputs) Correction {
	c, _ := correct(in, nil)
	return c
}

// CorrectChecked runs Correct but verifies, within tol, that the four input
// transforms and the user-to-corrected-tool chain are rigid. It returns
// ErrMalformedRigidTransform otherwise, which in practice means the inputs
// held NaN or Inf.
func CorrectChecked(in Inputs, tol float64) (Correction, error) {
	return correct(in, func(name string, t Transform) error {
		if !t.IsRigid(tol) {
			return fmt.Errorf("%w: %s", ErrMalformedRigidTransform, name)
		}
		return nil
	})
}

func correct(in Inputs, check func(string, Transform) error) (Correction, error) {
	tUT0UT1 := TransformFromPose(in.ToolInBase)
	tUF1UT1 := TransformFromPose(in.CameraInUser)
	tUF1C1 := TransformFromPose(in.ReferenceInUser)
	tUF1C2 := TransformFromPose(in.ActualInUser)

	if check != nil {
		for _, c := range []struct {
			name string
			t    Transform
		}{
			{"tool_in_base", tUT0UT1},
			{"camera_in_user", tUF1UT1},
			{"reference_in_user", tUF1C1},
			{"actual_in_user", tUF1C2},
		} {
			if err := check(c.name, c.t); err != nil {
				return Correction{}, err
			}
		}
	}

	tUT1UF1 := tUF1UT1.Inverse()
	tUT1C1 := Compose(tUT1UF1, tUF1C1)
	tUT1C2 := Compose(tUT1UF1, tUF1C2)

	tUT0C2 := Compose(tUT0UT1, tUT1C2)
	tUT0UT2 := Compose(tUT0C2, tUT1C1.Inverse())

	refInTool := tUT1C1.Pose()

	// Residual: predict C2 from UT2 through UF1 and compare with the template.
	tUF1UT0 := Compose(tUF1UT1, tUT0UT1.Inverse())
	tUF1UT2 := Compose(tUF1UT0, tUT0UT2)
	if check != nil {
		if err := check("user_to_corrected_tool", tUF1UT2); err != nil {
			return Correction{}, err
		}
	}
	predicted := Compose(tUF1UT2.Inverse(), tUF1C2).Pose()

	return Correction{
		Tool: tUT0UT2.Pose(),
		Residual: Residual{
			DX: math.Abs(refInTool.X - predicted.X),
			DY: math.Abs(refInTool.Y - predicted.Y),
			DR: math.Abs(refInTool.R - predicted.R),
		},
		ReferenceInTool: refInTool,
		ActualInTool:    tUT1C2.Pose(),
	}, nil
}
