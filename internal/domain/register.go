package domain

import (
	"fmt"

	"github.com/bft-labs/coordmod/pkg/geometry"
)

// RegisterKind is the representation a position register currently holds.
type RegisterKind string

const (
	Cartesian RegisterKind = "cartesian"
	Joint     RegisterKind = "joint"
)

// PoseRegister is a position register (PR). Only one of Pose and Joints is
// meaningful, selected by Kind.
type PoseRegister struct {
	ID      int           `json:"id"`
	Kind    RegisterKind  `json:"kind"`
	Pose    geometry.Pose `json:"pose"`
	Joints  []float64     `json:"joints,omitempty"`
	Comment string        `json:"comment,omitempty"`
}

// CartesianPose returns the register's pose, or ErrNotCartesian when it holds
// joint data.
func (r PoseRegister) CartesianPose() (geometry.Pose, error) {
	if r.Kind != Cartesian {
		return geometry.Pose{}, fmt.Errorf("%w: PR[%d] is %s", ErrNotCartesian, r.ID, r.Kind)
	}
	return r.Pose, nil
}
