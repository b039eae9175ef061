package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	StateFile         string    `toml:"state_file"`
	JournalPath       string    `toml:"journal"`
	NoJournal         *bool     `toml:"no_journal"`
	LogLevel          string    `toml:"log_level"`
	JSON              *bool     `toml:"json"`
	ConnectAttempts   int       `toml:"connect_attempts"`
	ConnectBackoff    string    `toml:"connect_backoff"`
	ConnectBackoffMax string    `toml:"connect_backoff_max"`
	WatchDebounce     string    `toml:"watch_debounce"`
	Shift             FileShift `toml:"shift"`
}

// FileShift is the [shift] table.
type FileShift struct {
	InputTF  int `toml:"input_tf"`
	ResultTF int `toml:"result_tf"`
	CamPose  int `toml:"cam_pose"`
	RefVis   int `toml:"ref_vis"`
	ActVis   int `toml:"act_vis"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.coordmod/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".coordmod", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("state-file", fc.StateFile, &cfg.StateFile)
	s.setString("journal", fc.JournalPath, &cfg.JournalPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setBool("no-journal", fc.NoJournal, &cfg.NoJournal)
	s.setBool("json", fc.JSON, &cfg.JSON)

	s.setInt("connect-attempts", fc.ConnectAttempts, &cfg.ConnectAttempts)

	if err := s.setDuration("connect-backoff", fc.ConnectBackoff, &cfg.ConnectBackoff); err != nil {
		return err
	}
	if err := s.setDuration("connect-backoff-max", fc.ConnectBackoffMax, &cfg.ConnectBackoffMax); err != nil {
		return err
	}
	if err := s.setDuration("debounce", fc.WatchDebounce, &cfg.WatchDebounce); err != nil {
		return err
	}

	s.setInt("input-tf", fc.Shift.InputTF, &cfg.Shift.InputTF)
	s.setInt("result-tf", fc.Shift.ResultTF, &cfg.Shift.ResultTF)
	s.setInt("cam-pose", fc.Shift.CamPose, &cfg.Shift.CamPose)
	s.setInt("ref-vis", fc.Shift.RefVis, &cfg.Shift.RefVis)
	s.setInt("act-vis", fc.Shift.ActVis, &cfg.Shift.ActVis)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
