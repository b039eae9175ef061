package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"COORDMOD_STATE_FILE":       "/env/state.json",
				"COORDMOD_JOURNAL":          "/env/journal.db",
				"COORDMOD_LOG_LEVEL":        "error",
				"COORDMOD_JSON":             "1",
				"COORDMOD_CONNECT_ATTEMPTS": "7",
				"COORDMOD_CONNECT_BACKOFF":  "50ms",
				"COORDMOD_WATCH_DEBOUNCE":   "2s",
				"COORDMOD_RESULT_TF":        "12",
				"COORDMOD_ACT_VIS":          "80",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				StateFile:       "/env/state.json",
				JournalPath:     "/env/journal.db",
				LogLevel:        "error",
				JSON:            true,
				ConnectAttempts: 7,
				ConnectBackoff:  50 * time.Millisecond,
				WatchDebounce:   2 * time.Second,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"COORDMOD_STATE_FILE": "/env/state.json",
				"COORDMOD_LOG_LEVEL":  "debug",
			},
			changed:  map[string]bool{"state-file": true},
			initial:  Config{StateFile: "/flag/state.json"},
			expected: Config{StateFile: "/flag/state.json", LogLevel: "debug"},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"COORDMOD_WATCH_DEBOUNCE": "later"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"COORDMOD_INPUT_TF": "one"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:     "handles bool 'false' as false",
			envVars:  map[string]string{"COORDMOD_NO_JOURNAL": "false"},
			changed:  map[string]bool{},
			initial:  Config{NoJournal: true},
			expected: Config{NoJournal: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}

			// Shift IDs are checked separately so the table stays readable.
			want := tt.expected
			want.Shift = cfg.Shift
			if cfg != want {
				t.Errorf("ApplyEnvConfig() =\n%+v\nwant\n%+v", cfg, want)
			}
		})
	}
}

func TestApplyEnvConfig_Shift(t *testing.T) {
	t.Setenv("COORDMOD_INPUT_TF", "2")
	t.Setenv("COORDMOD_CAM_POSE", "90")
	t.Setenv("COORDMOD_REF_VIS", "0")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{"cam-pose": true}); err != nil {
		t.Fatal(err)
	}
	if cfg.Shift.InputTF != 2 {
		t.Errorf("InputTF = %d, want 2", cfg.Shift.InputTF)
	}
	if cfg.Shift.CamPose != 60 {
		t.Errorf("CamPose = %d, want 60 (flag set)", cfg.Shift.CamPose)
	}
	if cfg.Shift.RefVis != 61 {
		t.Errorf("RefVis = %d, want 61 (non-positive ignored)", cfg.Shift.RefVis)
	}
}
