package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
)

// newLogger builds the process logger from the global flags. With no
// --log-file, logs go to stderr when useStderr is set and are discarded
// otherwise, so they never corrupt a full-screen terminal UI.
func newLogger(useStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := io.Discard
	cleanup := func() {}
	switch {
	case flagLogFile != "":
		if dir := filepath.Dir(flagLogFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		cleanup = func() { f.Close() }
	case useStderr:
		out = os.Stderr
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger, cleanup, nil
}

// loadConfig loads the game configuration and applies the --speed flag.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagSpeed != "" {
		preset := config.SpeedPreset(flagSpeed)
		if _, ok := config.PeriodForPreset(preset); !ok {
			return config.Config{}, fmt.Errorf("unknown --speed %q (want slow, normal or fast)", flagSpeed)
		}
		config.ApplySpeedPreset(&cfg, preset)
	}

	logger.Debug("config loaded", "source", source, "period", cfg.Timing.Period())
	return cfg, nil
}

// currentUser names the local player for session history.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "local"
}
