package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				StateFile:       "/cell/controller.json",
				LogLevel:        "debug",
				JSON:            &trueVal,
				ConnectAttempts: 5,
				ConnectBackoff:  "1s",
				WatchDebounce:   "100ms",
				Shift:           FileShift{InputTF: 2, ResultTF: 4, ActVis: 70},
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: func() Config {
				c := DefaultConfig()
				c.StateFile = "/cell/controller.json"
				c.LogLevel = "debug"
				c.JSON = true
				c.ConnectAttempts = 5
				c.ConnectBackoff = time.Second
				c.WatchDebounce = 100 * time.Millisecond
				c.Shift.InputTF = 2
				c.Shift.ResultTF = 4
				c.Shift.ActVis = 70
				return c
			}(),
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				StateFile: "/config/state.json",
				Shift:     FileShift{ResultTF: 9},
			},
			changed: map[string]bool{"state-file": true, "result-tf": true},
			initial: Config{StateFile: "/flag/state.json", Shift: DefaultConfig().Shift},
			expected: Config{
				StateFile: "/flag/state.json",
				Shift:     DefaultConfig().Shift,
			},
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{ConnectBackoffMax: "soon"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() =\n%+v\nwant\n%+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
state_file = "/cell/controller.json"
journal = "/cell/journal.db"
log_level = "warn"
connect_attempts = 4
watch_debounce = "500ms"

[shift]
input_tf = 1
result_tf = 5
cam_pose = 60
ref_vis = 61
act_vis = 62
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error: %v", err)
	}
	if fc.StateFile != "/cell/controller.json" {
		t.Errorf("StateFile = %v", fc.StateFile)
	}
	if fc.ConnectAttempts != 4 || fc.WatchDebounce != "500ms" {
		t.Errorf("ConnectAttempts = %v, WatchDebounce = %v", fc.ConnectAttempts, fc.WatchDebounce)
	}
	if fc.Shift.ResultTF != 5 || fc.Shift.ActVis != 62 {
		t.Errorf("Shift = %+v", fc.Shift)
	}
	if fc.JSON != nil {
		t.Errorf("JSON = %v, want unset", *fc.JSON)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("state_file = [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	p := DefaultConfigPath()
	if p != "" && !strings.HasSuffix(p, filepath.Join(".coordmod", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %v", p)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x")
	if FileExists(path) {
		t.Error("FileExists() = true before creation")
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false after creation")
	}
}
