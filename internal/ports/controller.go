package ports

import (
	"context"

	"github.com/bft-labs/coordmod/internal/domain"
)

// FrameStore gives access to the controller's tool and user frames.
type FrameStore interface {
	// Frame returns the frame, or domain.ErrFrameNotFound.
	Frame(ctx context.Context, kind domain.FrameKind, id int) (domain.Frame, error)

	// UpdateFrame writes the frame's pose and comment back to the controller.
	UpdateFrame(ctx context.Context, f domain.Frame) error
}

// RegisterStore gives access to numeric (R), position (PR) and string (SR)
// registers.
type RegisterStore interface {
	ReadR(ctx context.Context, id int) (float64, error)
	WriteR(ctx context.Context, id int, v float64) error

	// ReadPR returns the register, or domain.ErrRegisterNotFound.
	ReadPR(ctx context.Context, id int) (domain.PoseRegister, error)

	// WritePR updates an existing register. It does not create registers.
	WritePR(ctx context.Context, pr domain.PoseRegister) error

	ReadSR(ctx context.Context, id int) (string, error)
	WriteSR(ctx context.Context, id int, v string) error
}

// Controller is a connection to a robot controller.
type Controller interface {
	FrameStore
	RegisterStore

	// Connected reports whether the connection is still usable.
	Connected() bool

	// Close releases the connection.
	Close() error
}

// Dialer opens a new controller connection.
type Dialer func(ctx context.Context) (Controller, error)
