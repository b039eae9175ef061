// Package geometry converts 6-DOF poses to and from 4x4 rigid homogeneous
// transforms and computes vision-corrected tool frames.
//
// This package is pure: it performs no I/O, holds no state between calls and
// never logs. Callers read poses from the controller, hand them to
// [Correct], and write the returned pose back themselves.
//
// # Conventions
//
// Positions are millimetres, orientations are degrees. A [Pose] stores
// X, Y, Z and W, P, R where W, P and R rotate about X, Y and Z. The rotation
// matrix is Rz(R)·Ry(P)·Rx(W).
//
// # Usage
//
//	tool, _ := geometry.PoseFromList([]float64{0, 0, 0, 0, 0, 0})
//	c := geometry.Correct(geometry.Inputs{
//	    ToolInBase:      tool,
//	    CameraInUser:    geometry.NewPose(100, 0, 0, 0, 0, 0),
//	    ReferenceInUser: geometry.NewPose(150, 0, 0, 0, 0, 0),
//	    ActualInUser:    geometry.NewPose(160, 10, 0, 0, 0, 0),
//	})
//	fmt.Println(c.Tool) // X=10 Y=10
//
// # Rigid Transforms
//
// A [Transform] can only be built from a pose or derived from other
// transforms, so its rotation block stays orthonormal by construction.
// [Transform.Inverse] relies on that and does not check it. Use
// [Transform.IsRigid] or [CorrectChecked] when the input data is suspect.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package geometry
