package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// Profile backends selectable with --store.
const (
	storeSQLite = "sqlite"
	storeGData  = "gdata"
)

// app holds what every command opens: logger, tuning and storage.
type app struct {
	logger  *log.Logger
	logFile io.Closer
	tuning  config.RunnerConfig

	// store always holds the run history. It is also the profile
	// backend unless --store selects gdata.
	store    *storage.Store
	profiles storage.Backend
}

// openApp prepares logging, tuning and storage. When toFile is set, logs go
// to --log-file so they do not garble the TUI.
func openApp(toFile bool) (*app, error) {
	a := &app{}

	logger, closer, err := newLogger(toFile)
	if err != nil {
		return nil, err
	}
	a.logger, a.logFile = logger, closer

	a.tuning, err = config.LoadRunner(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.store, err = storage.Open(flagDBPath)
	if err != nil {
		a.Close()
		return nil, err
	}

	switch strings.ToLower(flagStore) {
	case storeSQLite, "":
		a.profiles = a.store
	case storeGData:
		gd, err := storage.OpenGData(appName)
		if err != nil {
			a.logger.Warn("gdata unavailable, using sqlite for the profile", "error", err)
			a.profiles = a.store
			break
		}
		a.profiles = gd
	default:
		a.Close()
		return nil, fmt.Errorf("unknown store %q (expected %s or %s)", flagStore, storeSQLite, storeGData)
	}

	a.logger.Debug("storage ready", "db", flagDBPath, "profiles", flagStore)
	return a, nil
}

// profile returns the local player's profile.
func (a *app) profile() *storage.Profile {
	return storage.NewProfile(a.profiles, a.logger)
}

// Close releases storage and the log file.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// newLogger builds the logger from --log-level and --log-file.
func newLogger(toFile bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer
	if toFile {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
		Level:           level,
	})
	return logger, closer, nil
}

func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// runtimeFromFlags returns the runtime config from the global flags.
func runtimeFromFlags() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
