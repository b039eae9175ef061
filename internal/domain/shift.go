package domain

import (
	"fmt"
	"time"

	"github.com/bft-labs/coordmod/pkg/geometry"
)

// ShiftRequest names the frames and registers a tool-frame shift reads and
// writes. Register IDs are not range-checked; the controller rejects unknown
// ones.
type ShiftRequest struct {
	InputTF  int `json:"input_tf" toml:"input_tf"`
	ResultTF int `json:"result_tf" toml:"result_tf"`
	CamPose  int `json:"cam_pose" toml:"cam_pose"`
	RefVis   int `json:"ref_vis" toml:"ref_vis"`
	ActVis   int `json:"act_vis" toml:"act_vis"`
}

// DefaultShiftRequest returns the IDs used when none are given.
func DefaultShiftRequest() ShiftRequest {
	return ShiftRequest{InputTF: 1, ResultTF: 3, CamPose: 60, RefVis: 61, ActVis: 62}
}

// Validate checks both tool frame IDs.
func (r ShiftRequest) Validate() error {
	if err := ValidateFrameID(r.InputTF); err != nil {
		return fmt.Errorf("input TF: %w", err)
	}
	if err := ValidateFrameID(r.ResultTF); err != nil {
		return fmt.Errorf("result TF: %w", err)
	}
	return nil
}

// CorrectionRecord is the journal entry written for every tool-frame shift.
type CorrectionRecord struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Request   ShiftRequest        `json:"request"`
	Inputs    geometry.Inputs     `json:"inputs"`
	Result    geometry.Correction `json:"result"`
}

// ShiftOutcome is what a tool-frame shift computed and wrote.
type ShiftOutcome struct {
	Request    ShiftRequest        `json:"request"`
	Inputs     geometry.Inputs     `json:"inputs"`
	Correction geometry.Correction `json:"correction"`
	RecordID   string              `json:"record_id,omitempty"`
	Message    string              `json:"message"`
}
