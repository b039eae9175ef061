package ports

import (
	"context"

	"github.com/bft-labs/coordmod/internal/domain"
)

// Shifter runs a tool-frame shift.
type Shifter interface {
	TFShift(ctx context.Context, req domain.ShiftRequest) (domain.ShiftOutcome, error)
}

// PluginConfig is handed to a plugin when it is initialized.
type PluginConfig struct {
	// StateFile is the controller image being served.
	StateFile string

	// Shift holds the IDs a shift-running plugin uses.
	Shift domain.ShiftRequest

	Connector Connector
	Shifter   Shifter
	Logger    Logger
}

// Plugin is an optional background component started alongside the CLI.
type Plugin interface {
	// Name returns the plugin identifier.
	Name() string

	// Initialize starts the plugin. It must not block.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown stops the plugin and waits for its goroutines.
	Shutdown(ctx context.Context) error
}
