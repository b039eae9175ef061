package ports

import "context"

// Connector hands out the process-wide controller connection, dialing it on
// first use and again after it was lost.
type Connector interface {
	// Get returns a connected controller.
	Get(ctx context.Context) (Controller, error)

	// OnError reports a failed controller call. Errors wrapping
	// domain.ErrNotConnected drop the cached connection.
	OnError(err error)
}
