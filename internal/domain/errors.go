package domain

import "errors"

// Domain errors represent error conditions of the frame commands.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidFrameID is returned for a frame ID outside 1..30.
	ErrInvalidFrameID = errors.New("coordmod: frame ID must be between 1 and 30")

	// ErrInvalidAxis is returned for a position index outside 1..6.
	ErrInvalidAxis = errors.New("coordmod: position must be between 1 and 6")

	// ErrNotCartesian is returned when a position register holds joint data.
	ErrNotCartesian = errors.New("coordmod: position register does not hold Cartesian data")

	// ErrFrameNotFound is returned when the controller has no such frame.
	ErrFrameNotFound = errors.New("coordmod: frame not found")

	// ErrRegisterNotFound is returned when the controller has no such register.
	ErrRegisterNotFound = errors.New("coordmod: register not found")

	// ErrNotConnected is returned when the controller connection is gone.
	ErrNotConnected = errors.New("coordmod: controller not connected")

	// ErrNoMaterial is returned by Strp when the vision status is 0.
	ErrNoMaterial = errors.New("coordmod: vision reported no material")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("coordmod: invalid configuration")
)
