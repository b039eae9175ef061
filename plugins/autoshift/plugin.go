// Package autoshift re-runs the tool-frame shift whenever the vision system
// stores a new detected pose. It watches the controller state file and, after
// changes settle, compares PR[ActVis] with the pose used for the last shift.
package autoshift

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/coordmod/internal/ports"
	"github.com/bft-labs/coordmod/pkg/geometry"
	"github.com/bft-labs/coordmod/pkg/log"
)

// Plugin implements the shift watcher.
type Plugin struct {
	debounceDelay time.Duration

	mu     sync.Mutex
	cfg    ports.PluginConfig
	last   *geometry.Pose
	runs   int
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds configuration options for the shift watcher.
type Config struct {
	// DebounceDelay is how long the state file must stay quiet before the
	// detected pose is checked.
	// Default: 250 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DebounceDelay: 250 * time.Millisecond}
}

// New creates a new shift watcher with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultConfig().DebounceDelay
	}
	return &Plugin{debounceDelay: cfg.DebounceDelay}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "autoshift"
}

// Initialize checks the detected pose once and starts watching.
func (p *Plugin) Initialize(ctx context.Context, cfg ports.PluginConfig) error {
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	p.mu.Lock()
	p.cfg = cfg
	p.mu.Unlock()

	if cfg.StateFile == "" || cfg.Shifter == nil || cfg.Connector == nil {
		cfg.Logger.Warn("shift watcher disabled: state file, shifter or connector not configured")
		return nil
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	cfg.Logger.Info("shift watcher initialized",
		log.String("state_file", cfg.StateFile),
		log.Int("act_vis", cfg.Shift.ActVis),
		log.Duration("debounce", p.debounceDelay))

	p.wg.Add(1)
	go p.watchLoop(watchCtx)
	return nil
}

// Shutdown stops the watcher.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Runs returns the number of shifts the watcher has completed.
func (p *Plugin) Runs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.runs
}

func (p *Plugin) watchLoop(ctx context.Context) {
	defer p.wg.Done()
	logger := p.cfg.Logger

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("shift watcher: failed to create watcher", log.Err(err))
		return
	}
	defer watcher.Close()

	// The file is replaced by rename on every save, so watch its directory.
	dir, name := filepath.Split(p.cfg.StateFile)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		logger.Error("shift watcher: failed to watch directory", log.String("dir", dir), log.Err(err))
		return
	}

	p.check(ctx)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(p.debounceDelay)
			} else {
				timer.Reset(p.debounceDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			p.check(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("shift watcher: watcher error", log.Err(err))
		}
	}
}

// check runs a shift if PR[ActVis] differs from the pose the previous shift
// used. The shift's own write to the result frame therefore never triggers
// another one.
func (p *Plugin) check(ctx context.Context) {
	cfg := p.cfg
	logger := cfg.Logger

	c, err := cfg.Connector.Get(ctx)
	if err != nil {
		logger.Warn("shift watcher: controller unavailable", log.Err(err))
		return
	}
	pr, err := c.ReadPR(ctx, cfg.Shift.ActVis)
	if err != nil {
		cfg.Connector.OnError(err)
		logger.Warn("shift watcher: cannot read detected pose", log.Int("pr", cfg.Shift.ActVis), log.Err(err))
		return
	}
	pose, err := pr.CartesianPose()
	if err != nil {
		logger.Warn("shift watcher: detected pose unusable", log.Err(err))
		return
	}

	p.mu.Lock()
	unchanged := p.last != nil && *p.last == pose
	p.mu.Unlock()
	if unchanged {
		logger.Debug("shift watcher: detected pose unchanged")
		return
	}

	out, err := cfg.Shifter.TFShift(ctx, cfg.Shift)
	if err != nil {
		logger.Error("shift watcher: shift failed", log.Err(err))
		return
	}

	p.mu.Lock()
	p.last = &pose
	p.runs++
	p.mu.Unlock()
	logger.Info("shift watcher: "+out.Message, log.Float64("residual_max", out.Correction.Residual.Max()))
}

// Ensure Plugin implements ports.Plugin.
var _ ports.Plugin = (*Plugin)(nil)
