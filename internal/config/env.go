package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings read from NEONRUNNER_* variables. The CLI uses
// them as flag defaults, so explicit flags still win.
type Env struct {
	DBPath     string `env:"NEONRUNNER_DB"`
	Store      string `env:"NEONRUNNER_STORE"      envDefault:"sqlite"`
	FPS        int    `env:"NEONRUNNER_FPS"        envDefault:"60"`
	Seed       int64  `env:"NEONRUNNER_SEED"`
	LogLevel   string `env:"NEONRUNNER_LOG_LEVEL"  envDefault:"info"`
	LogFile    string `env:"NEONRUNNER_LOG_FILE"`
	Sound      bool   `env:"NEONRUNNER_SOUND"`
	ConfigPath string `env:"NEONRUNNER_CONFIG"`
	SSHHost    string `env:"NEONRUNNER_SSH_HOST"   envDefault:"0.0.0.0"`
	SSHPort    int    `env:"NEONRUNNER_SSH_PORT"   envDefault:"2222"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads the NEONRUNNER_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
