package domain

import (
	"fmt"

	"github.com/bft-labs/coordmod/pkg/geometry"
)

// MaxFrameID is the highest tool or user frame number. Frame 0 is the base
// frame and cannot be modified.
const MaxFrameID = 30

// FrameKind distinguishes tool frames from user frames.
type FrameKind string

const (
	ToolFrame FrameKind = "TF"
	UserFrame FrameKind = "UF"
)

// Valid reports whether k is a known frame kind.
func (k FrameKind) Valid() bool {
	return k == ToolFrame || k == UserFrame
}

// ValidateFrameID checks that id addresses a modifiable frame.
func ValidateFrameID(id int) error {
	if id < 1 || id > MaxFrameID {
		return fmt.Errorf("%w: got %d", ErrInvalidFrameID, id)
	}
	return nil
}

// Axis is the 1-based position index used by the frame-set commands:
// 1..3 are X, Y, Z and 4..6 are the A, B, C rotations (W, P, R).
type Axis int

const (
	AxisX Axis = iota + 1
	AxisY
	AxisZ
	AxisA
	AxisB
	AxisC
)

var axisNames = [...]string{"", "X", "Y", "Z", "A", "B", "C"}

// ParseAxis validates a position index.
func ParseAxis(pos int) (Axis, error) {
	if pos < int(AxisX) || pos > int(AxisC) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidAxis, pos)
	}
	return Axis(pos), nil
}

func (a Axis) String() string {
	if a < AxisX || a > AxisC {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Component maps the axis onto the pose field it addresses.
func (a Axis) Component() geometry.Component {
	return geometry.Component(a - 1)
}

// Frame is a tool or user coordinate frame.
type Frame struct {
	Kind    FrameKind     `json:"kind"`
	ID      int           `json:"id"`
	Comment string        `json:"comment,omitempty"`
	Pose    geometry.Pose `json:"pose"`
}

func (f Frame) String() string {
	return fmt.Sprintf("%s[%d]", f.Kind, f.ID)
}
