// Package fs provides a controller backed by a JSON image on disk.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bft-labs/coordmod/internal/adapters/memory"
	"github.com/bft-labs/coordmod/internal/domain"
)

// Controller implements ports.Controller over a JSON state file. Every call
// reloads the file so that edits made by other processes are seen; writes
// are saved atomically.
type Controller struct {
	path string

	mu     sync.Mutex
	closed bool
}

// Open returns a controller for the state file at path. The file must exist.
func Open(ctx context.Context, path string) (*Controller, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no state file at %s", domain.ErrNotConnected, path)
		}
		return nil, err
	}
	return &Controller{path: path}, nil
}

// Seed writes a fresh image to path, replacing any existing file.
func Seed(path string, state *memory.State) error {
	if state == nil {
		state = memory.NewSeededState(memory.DefaultPRCount)
	}
	return save(path, state)
}

// Load reads the image at path.
func Load(path string) (*memory.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no state file at %s", domain.ErrNotConnected, path)
		}
		return nil, err
	}

	var state memory.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	state.Normalize()
	return &state, nil
}

// save persists the image atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func save(path string, state *memory.State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Path returns the state file path.
func (c *Controller) Path() string {
	return c.path
}

func (c *Controller) view(ctx context.Context, fn func(*memory.State) error) error {
	return c.run(ctx, false, fn)
}

func (c *Controller) update(ctx context.Context, fn func(*memory.State) error) error {
	return c.run(ctx, true, fn)
}

func (c *Controller) run(ctx context.Context, write bool, fn func(*memory.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrNotConnected
	}

	state, err := Load(c.path)
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		return err
	}
	if !write {
		return nil
	}
	return save(c.path, state)
}

// Frame implements ports.FrameStore.
func (c *Controller) Frame(ctx context.Context, kind domain.FrameKind, id int) (f domain.Frame, err error) {
	err = c.view(ctx, func(s *memory.State) error {
		f, err = s.Frame(kind, id)
		return err
	})
	return f, err
}

// UpdateFrame implements ports.FrameStore.
func (c *Controller) UpdateFrame(ctx context.Context, f domain.Frame) error {
	return c.update(ctx, func(s *memory.State) error { return s.UpdateFrame(f) })
}

// ReadR implements ports.RegisterStore.
func (c *Controller) ReadR(ctx context.Context, id int) (v float64, err error) {
	err = c.view(ctx, func(s *memory.State) error {
		v = s.ReadR(id)
		return nil
	})
	return v, err
}

// WriteR implements ports.RegisterStore.
func (c *Controller) WriteR(ctx context.Context, id int, v float64) error {
	return c.update(ctx, func(s *memory.State) error {
		s.WriteR(id, v)
		return nil
	})
}

// ReadPR implements ports.RegisterStore.
func (c *Controller) ReadPR(ctx context.Context, id int) (pr domain.PoseRegister, err error) {
	err = c.view(ctx, func(s *memory.State) error {
		pr, err = s.ReadPR(id)
		return err
	})
	return pr, err
}

// WritePR implements ports.RegisterStore.
func (c *Controller) WritePR(ctx context.Context, pr domain.PoseRegister) error {
	return c.update(ctx, func(s *memory.State) error { return s.WritePR(pr) })
}

// ReadSR implements ports.RegisterStore.
func (c *Controller) ReadSR(ctx context.Context, id int) (v string, err error) {
	err = c.view(ctx, func(s *memory.State) error {
		v = s.ReadSR(id)
		return nil
	})
	return v, err
}

// WriteSR implements ports.RegisterStore.
func (c *Controller) WriteSR(ctx context.Context, id int, v string) error {
	return c.update(ctx, func(s *memory.State) error {
		s.WriteSR(id, v)
		return nil
	})
}

// Connected implements ports.Controller. A removed state file counts as a
// lost connection.
func (c *Controller) Connected() bool {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return false
	}
	_, err := os.Stat(c.path)
	return err == nil
}

// Close implements ports.Controller.
func (c *Controller) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

// IsMissing reports whether err means the state file does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, domain.ErrNotConnected)
}
