package memory

import (
	"context"
	"sync"

	"github.com/bft-labs/coordmod/internal/domain"
)

// Controller implements ports.Controller over an in-memory State.
type Controller struct {
	mu     sync.Mutex
	state  *State
	closed bool
}

// NewController wraps state. A nil state starts from a seeded image.
func NewController(state *State) *Controller {
	if state == nil {
		state = NewSeededState(DefaultPRCount)
	}
	state.Normalize()
	return &Controller{state: state}
}

// Snapshot calls fn with the image under the lock.
func (c *Controller) Snapshot(fn func(*State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.state)
}

// Disconnect simulates a dropped connection. Every later call fails with
// domain.ErrNotConnected.
func (c *Controller) Disconnect() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Controller) do(ctx context.Context, fn func(*State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrNotConnected
	}
	return fn(c.state)
}

// Frame implements ports.FrameStore.
func (c *Controller) Frame(ctx context.Context, kind domain.FrameKind, id int) (f domain.Frame, err error) {
	err = c.do(ctx, func(s *State) error {
		f, err = s.Frame(kind, id)
		return err
	})
	return f, err
}

// UpdateFrame implements ports.FrameStore.
func (c *Controller) UpdateFrame(ctx context.Context, f domain.Frame) error {
	return c.do(ctx, func(s *State) error { return s.UpdateFrame(f) })
}

// ReadR implements ports.RegisterStore.
func (c *Controller) ReadR(ctx context.Context, id int) (v float64, err error) {
	err = c.do(ctx, func(s *State) error {
		v = s.ReadR(id)
		return nil
	})
	return v, err
}

// WriteR implements ports.RegisterStore.
func (c *Controller) WriteR(ctx context.Context, id int, v float64) error {
	return c.do(ctx, func(s *State) error {
		s.WriteR(id, v)
		return nil
	})
}

// ReadPR implements ports.RegisterStore.
func (c *Controller) ReadPR(ctx context.Context, id int) (pr domain.PoseRegister, err error) {
	err = c.do(ctx, func(s *State) error {
		pr, err = s.ReadPR(id)
		return err
	})
	return pr, err
}

// WritePR implements ports.RegisterStore.
func (c *Controller) WritePR(ctx context.Context, pr domain.PoseRegister) error {
	return c.do(ctx, func(s *State) error { return s.WritePR(pr) })
}

// ReadSR implements ports.RegisterStore.
func (c *Controller) ReadSR(ctx context.Context, id int) (v string, err error) {
	err = c.do(ctx, func(s *State) error {
		v = s.ReadSR(id)
		return nil
	})
	return v, err
}

// WriteSR implements ports.RegisterStore.
func (c *Controller) WriteSR(ctx context.Context, id int, v string) error {
	return c.do(ctx, func(s *State) error {
		s.WriteSR(id, v)
		return nil
	})
}

// Connected implements ports.Controller.
func (c *Controller) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

// Close implements ports.Controller.
func (c *Controller) Close() error {
	c.Disconnect()
	return nil
}
