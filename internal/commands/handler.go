// Package commands implements the controller instructions: frame edits,
// register arithmetic, vision string decoding, the tool-frame shift and
// decimal-to-hex conversion.
//
// Every method returns a human-readable message and an error. Callers at the
// host boundary turn the pair into a domain.Result.
package commands

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/internal/ports"
	"github.com/bft-labs/coordmod/pkg/geometry"
	"github.com/bft-labs/coordmod/pkg/log"
)

// Handler runs instructions against the controller handed out by a
// Connector.
type Handler struct {
	conn    ports.Connector
	logger  log.Logger
	journal ports.Journal
	newID   func() string
	now     func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. The default discards output.
func WithLogger(l log.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithJournal records every tool-frame shift in j.
func WithJournal(j ports.Journal) Option {
	return func(h *Handler) { h.journal = j }
}

// WithIDFunc overrides the journal record ID generator.
func WithIDFunc(fn func() string) Option {
	return func(h *Handler) { h.newID = fn }
}

// WithClock overrides the journal timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(h *Handler) { h.now = fn }
}

// New creates a Handler.
func New(conn ports.Connector, opts ...Option) *Handler {
	h := &Handler{
		conn:   conn,
		logger: log.NewNoopLogger(),
		newID:  func() string { return uuid.NewString() },
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// fail reports err to the connector so a lost connection is redialed on the
// next call, and returns it unchanged.
func (h *Handler) fail(err error) error {
	if errors.Is(err, domain.ErrNotConnected) {
		h.conn.OnError(err)
	}
	return err
}

// poseField logs p as a nested object keyed x, y, z, w, p, r.
func poseField(key string, p geometry.Pose) log.Field {
	return log.Any(key, p)
}
