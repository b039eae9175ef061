// Package session keeps the process-wide controller connection.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/internal/ports"
	"github.com/bft-labs/coordmod/pkg/log"
)

// Config controls dialing.
type Config struct {
	// Attempts is the number of dials tried per Get. Values below 1 mean 1.
	Attempts int

	// BackoffInitial and BackoffMax bound the wait between dials.
	BackoffInitial time.Duration
	BackoffMax     time.Duration
}

// Manager implements ports.Connector. It dials lazily, reuses the cached
// connection while it reports Connected, and redials after it was lost.
type Manager struct {
	dial   ports.Dialer
	cfg    Config
	logger log.Logger
	sleep  func(context.Context, time.Duration) error

	mu   sync.Mutex
	conn ports.Controller
}

// NewManager creates a Manager. A nil logger discards output.
func NewManager(dial ports.Dialer, cfg Config, logger log.Logger) *Manager {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	return &Manager{dial: dial, cfg: cfg, logger: logger, sleep: sleepCtx}
}

// Get implements ports.Connector.
func (m *Manager) Get(ctx context.Context) (ports.Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		if m.conn.Connected() {
			return m.conn, nil
		}
		m.logger.Warn("controller connection lost, reconnecting")
		m.dropLocked()
	}

	bo := newBackoff(m.cfg.BackoffInitial, m.cfg.BackoffMax)
	var lastErr error
	for attempt := 1; attempt <= m.cfg.Attempts; attempt++ {
		if attempt > 1 {
			if err := m.sleep(ctx, bo.next()); err != nil {
				return nil, err
			}
		}

		conn, err := m.dial(ctx)
		if err == nil {
			m.conn = conn
			m.logger.Debug("controller connected", log.Int("attempt", attempt))
			return conn, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		lastErr = err
		m.logger.Warn("controller dial failed", log.Int("attempt", attempt), log.Err(err))
	}

	return nil, fmt.Errorf("connect after %d attempts: %w", m.cfg.Attempts, lastErr)
}

// OnError implements ports.Connector.
func (m *Manager) OnError(err error) {
	if !errors.Is(err, domain.ErrNotConnected) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn != nil {
		m.logger.Warn("dropping controller connection", log.Err(err))
		m.dropLocked()
	}
}

// Close drops the cached connection.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	return err
}

func (m *Manager) dropLocked() {
	if err := m.conn.Close(); err != nil {
		m.logger.Debug("close stale connection", log.Err(err))
	}
	m.conn = nil
}
