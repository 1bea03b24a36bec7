package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const runnerFile = "runner.yaml"

// LoadRunner loads the runner tuning configuration.
// Search order: customPath -> ~/.neonrunner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
// Files only need to set the values they change; everything else keeps its default.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(runnerFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", runnerFile)); err == nil {
		if cfg, err := ParseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseRunner decodes YAML on top of the built-in defaults and validates the result.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate rejects tuning values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.FollowRate <= 0 || c.Player.FollowRate > 1 {
		errs = append(errs, fmt.Errorf("player follow_rate must be in (0, 1], got %v", c.Player.FollowRate))
	}
	if c.Obstacles.MinInterval <= 0 || c.Obstacles.MaxInterval < c.Obstacles.MinInterval {
		errs = append(errs, fmt.Errorf("obstacle intervals invalid: min %d, max %d", c.Obstacles.MinInterval, c.Obstacles.MaxInterval))
	}
	if c.PowerUps.MinInterval <= 0 || c.PowerUps.MaxInterval < c.PowerUps.MinInterval {
		errs = append(errs, fmt.Errorf("powerup intervals invalid: min %d, max %d", c.PowerUps.MinInterval, c.PowerUps.MaxInterval))
	}
	if c.PowerUps.ShieldChance+c.PowerUps.SlowMoChance > 1 {
		errs = append(errs, errors.New("powerup shield_chance + slow_mo_chance must not exceed 1"))
	}
	if c.Progression.LevelScore <= 0 {
		errs = append(errs, fmt.Errorf("progression level_score must be positive, got %d", c.Progression.LevelScore))
	}
	for name, p := range c.Difficulty {
		if p.SpeedMultiplier <= 0 || p.SpawnRate <= 0 {
			errs = append(errs, fmt.Errorf("difficulty %q multipliers must be positive", name))
		}
	}
	return errors.Join(errs...)
}

// MarshalRunner encodes cfg as YAML.
func MarshalRunner(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonrunner", "configs", filename)
}
