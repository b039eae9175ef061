package geometry

import "errors"

var (
	// ErrInvalidPoseShape is returned when a pose is built from a list whose
	// length is not six.
	ErrInvalidPoseShape = errors.New("geometry: pose list must have 6 elements [X,Y,Z,W,P,R]")

	// ErrMalformedRigidTransform is returned by the checked correction path
	// when a transform's rotation block is not orthonormal. The unchecked
	// path never detects this.
	ErrMalformedRigidTransform = errors.New("geometry: transform is not rigid")
)
