package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/pkg/log"
)

// Config holds CLI configuration for coordmod.
type Config struct {
	// StateFile is the JSON controller image the commands operate on.
	StateFile string

	// JournalPath is the SQLite correction journal.
	JournalPath string
	NoJournal   bool

	LogLevel string
	JSON     bool

	ConnectAttempts   int
	ConnectBackoff    time.Duration
	ConnectBackoffMax time.Duration

	WatchDebounce time.Duration

	// Shift holds the default IDs for tf-shift and watch.
	Shift domain.ShiftRequest
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		StateFile:         defaultPath("controller.json"),
		JournalPath:       defaultPath("journal.db"),
		LogLevel:          string(log.LevelInfo),
		ConnectAttempts:   3,
		ConnectBackoff:    200 * time.Millisecond,
		ConnectBackoffMax: 2 * time.Second,
		WatchDebounce:     250 * time.Millisecond,
		Shift:             domain.DefaultShiftRequest(),
	}
}

// defaultPath returns name inside ~/.coordmod, or name itself when the home
// directory is unknown.
func defaultPath(name string) string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".coordmod", name)
	}
	return name
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.StateFile == "" {
		return fmt.Errorf("%w: state-file is required", domain.ErrInvalidConfig)
	}
	if !c.NoJournal && c.JournalPath == "" {
		return fmt.Errorf("%w: journal path is required (or --no-journal)", domain.ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if c.ConnectAttempts < 1 {
		return fmt.Errorf("%w: connect attempts must be at least 1", domain.ErrInvalidConfig)
	}
	if c.ConnectBackoff < 0 || c.ConnectBackoffMax < 0 {
		return fmt.Errorf("%w: connect backoff must not be negative", domain.ErrInvalidConfig)
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("%w: watch debounce must be positive", domain.ErrInvalidConfig)
	}
	if err := c.Shift.Validate(); err != nil {
		return fmt.Errorf("%w: shift: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
