// Package memory provides an in-memory controller image and a Controller
// backed by it.
package memory

import (
	"fmt"

	"github.com/bft-labs/coordmod/internal/domain"
)

// DefaultPRCount is the number of position registers a seeded image carries.
const DefaultPRCount = 100

// State is a serialisable image of the controller data the commands touch.
type State struct {
	ToolFrames map[int]domain.Frame        `json:"tool_frames"`
	UserFrames map[int]domain.Frame        `json:"user_frames"`
	R          map[int]float64             `json:"r"`
	PR         map[int]domain.PoseRegister `json:"pr"`
	SR         map[int]string              `json:"sr"`
}

// NewState returns an empty image.
func NewState() *State {
	s := &State{}
	s.init()
	return s
}

// NewSeededState returns an image with frames 0..30 of both kinds and
// Cartesian position registers 1..prCount, all at zero.
func NewSeededState(prCount int) *State {
	s := NewState()
	for id := 0; id <= domain.MaxFrameID; id++ {
		s.ToolFrames[id] = domain.Frame{Kind: domain.ToolFrame, ID: id}
		s.UserFrames[id] = domain.Frame{Kind: domain.UserFrame, ID: id}
	}
	for id := 1; id <= prCount; id++ {
		s.PR[id] = domain.PoseRegister{ID: id, Kind: domain.Cartesian}
	}
	return s
}

// init fills in nil maps, e.g. after decoding a sparse file.
func (s *State) init() {
	if s.ToolFrames == nil {
		s.ToolFrames = map[int]domain.Frame{}
	}
	if s.UserFrames == nil {
		s.UserFrames = map[int]domain.Frame{}
	}
	if s.R == nil {
		s.R = map[int]float64{}
	}
	if s.PR == nil {
		s.PR = map[int]domain.PoseRegister{}
	}
	if s.SR == nil {
		s.SR = map[int]string{}
	}
}

// Normalize makes a decoded image safe to use.
func (s *State) Normalize() {
	s.init()
}

func (s *State) frames(kind domain.FrameKind) (map[int]domain.Frame, error) {
	switch kind {
	case domain.ToolFrame:
		return s.ToolFrames, nil
	case domain.UserFrame:
		return s.UserFrames, nil
	}
	return nil, fmt.Errorf("unknown frame kind %q", kind)
}

// Frame looks up a frame.
func (s *State) Frame(kind domain.FrameKind, id int) (domain.Frame, error) {
	frames, err := s.frames(kind)
	if err != nil {
		return domain.Frame{}, err
	}
	f, ok := frames[id]
	if !ok {
		return domain.Frame{}, fmt.Errorf("%w: %s[%d]", domain.ErrFrameNotFound, kind, id)
	}
	return f, nil
}

// UpdateFrame replaces an existing frame.
func (s *State) UpdateFrame(f domain.Frame) error {
	frames, err := s.frames(f.Kind)
	if err != nil {
		return err
	}
	if _, ok := frames[f.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrFrameNotFound, f)
	}
	frames[f.ID] = f
	return nil
}

// ReadR returns a numeric register. Unset registers read as 0.
func (s *State) ReadR(id int) float64 {
	return s.R[id]
}

// WriteR sets a numeric register.
func (s *State) WriteR(id int, v float64) {
	s.R[id] = v
}

// ReadPR looks up a position register.
func (s *State) ReadPR(id int) (domain.PoseRegister, error) {
	pr, ok := s.PR[id]
	if !ok {
		return domain.PoseRegister{}, fmt.Errorf("%w: PR[%d]", domain.ErrRegisterNotFound, id)
	}
	return pr, nil
}

// WritePR replaces an existing position register.
func (s *State) WritePR(pr domain.PoseRegister) error {
	if _, ok := s.PR[pr.ID]; !ok {
		return fmt.Errorf("%w: PR[%d]", domain.ErrRegisterNotFound, pr.ID)
	}
	s.PR[pr.ID] = pr
	return nil
}

// ReadSR returns a string register. Unset registers read as "".
func (s *State) ReadSR(id int) string {
	return s.SR[id]
}

// WriteSR sets a string register.
func (s *State) WriteSR(id int, v string) {
	s.SR[id] = v
}
