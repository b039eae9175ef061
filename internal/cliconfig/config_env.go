package cliconfig

import "os"

// envPrefix is prepended to every environment variable name.
const envPrefix = "COORDMOD_"

// ApplyEnvConfig applies COORDMOD_* environment variables to cfg. They
// override the config file but not flags that were explicitly set.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)
	env := func(name string) string { return os.Getenv(envPrefix + name) }

	s.setString("state-file", env("STATE_FILE"), &cfg.StateFile)
	s.setString("journal", env("JOURNAL"), &cfg.JournalPath)
	s.setString("log-level", env("LOG_LEVEL"), &cfg.LogLevel)

	s.setBoolFromString("no-journal", env("NO_JOURNAL"), &cfg.NoJournal)
	s.setBoolFromString("json", env("JSON"), &cfg.JSON)

	ints := []struct {
		flag, name string
		dst        *int
	}{
		{"connect-attempts", "CONNECT_ATTEMPTS", &cfg.ConnectAttempts},
		{"input-tf", "INPUT_TF", &cfg.Shift.InputTF},
		{"result-tf", "RESULT_TF", &cfg.Shift.ResultTF},
		{"cam-pose", "CAM_POSE", &cfg.Shift.CamPose},
		{"ref-vis", "REF_VIS", &cfg.Shift.RefVis},
		{"act-vis", "ACT_VIS", &cfg.Shift.ActVis},
	}
	for _, i := range ints {
		if err := s.setIntFromString(i.flag, env(i.name), i.dst); err != nil {
			return err
		}
	}

	if err := s.setDuration("connect-backoff", env("CONNECT_BACKOFF"), &cfg.ConnectBackoff); err != nil {
		return err
	}
	if err := s.setDuration("connect-backoff-max", env("CONNECT_BACKOFF_MAX"), &cfg.ConnectBackoffMax); err != nil {
		return err
	}
	return s.setDuration("debounce", env("WATCH_DEBOUNCE"), &cfg.WatchDebounce)
}
