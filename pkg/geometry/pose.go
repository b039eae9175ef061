package geometry

import (
	"fmt"
)

// Pose is a 6-DOF position and orientation. X, Y and Z are millimetres; W, P
// and R are degrees of rotation about X, Y and Z.
type Pose struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
	P float64 `json:"p"`
	R float64 `json:"r"`
}

// Component indexes one of the six pose fields, in list order.
type Component int

const (
	ComponentX Component = iota
	ComponentY
	ComponentZ
	ComponentW
	ComponentP
	ComponentR
)

var componentNames = [...]string{"X", "Y", "Z", "W", "P", "R"}

func (c Component) String() string {
	if c < ComponentX || c > ComponentR {
		return fmt.Sprintf("Component(%d)", int(c))
	}
	return componentNames[c]
}

// NewPose returns a pose with the given fields.
func NewPose(x, y, z, w, p, r float64) Pose {
	return Pose{X: x, Y: y, Z: z, W: w, P: p, R: r}
}

// PoseFromList builds a pose from [X,Y,Z,W,P,R]. Values are copied verbatim.
func PoseFromList(vals []float64) (Pose, error) {
	if len(vals) != 6 {
		return Pose{}, fmt.Errorf("%w: got %d", ErrInvalidPoseShape, len(vals))
	}
	return Pose{X: vals[0], Y: vals[1], Z: vals[2], W: vals[3], P: vals[4], R: vals[5]}, nil
}

// List returns the pose as [X,Y,Z,W,P,R].
func (p Pose) List() []float64 {
	return []float64{p.X, p.Y, p.Z, p.W, p.P, p.R}
}

// Get returns one component.
func (p Pose) Get(c Component) float64 {
	switch c {
	case ComponentX:
		return p.X
	case ComponentY:
		return p.Y
	case ComponentZ:
		return p.Z
	case ComponentW:
		return p.W
	case ComponentP:
		return p.P
	case ComponentR:
		return p.R
	}
	panic("geometry: invalid pose component")
}

// With returns a copy of the pose with one component replaced.
func (p Pose) With(c Component, v float64) Pose {
	switch c {
	case ComponentX:
		p.X = v
	case ComponentY:
		p.Y = v
	case ComponentZ:
		p.Z = v
	case ComponentW:
		p.W = v
	case ComponentP:
		p.P = v
	case ComponentR:
		p.R = v
	default:
		panic("geometry: invalid pose component")
	}
	return p
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{x=%.12f y=%.12f z=%.12f w=%.12f p=%.12f r=%.12f}", p.X, p.Y, p.Z, p.W, p.P, p.R)
}

// Compact renders the pose as six space-separated values with 6 decimals.
func (p Pose) Compact() string {
	return fmt.Sprintf("%.6f %.6f %.6f %.6f %.6f %.6f", p.X, p.Y, p.Z, p.W, p.P, p.R)
}
