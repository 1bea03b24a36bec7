package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var fromYAML RunnerConfig
	if err := yaml.Unmarshal(DefaultRunnerYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded runner.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultRunnerConfig()) {
		t.Errorf("embedded runner.yaml differs from DefaultRunnerConfig()\nyaml: %+v\ncode: %+v", fromYAML, DefaultRunnerConfig())
	}
}

func TestDefaultRunnerConfigValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParseRunnerPartialOverride(t *testing.T) {
	data := []byte(`
progression:
  base_speed: 10
difficulty:
  insane:
    speed_multiplier: 2.0
    spawn_rate: 0.4
`)
	cfg, err := ParseRunner(data)
	if err != nil {
		t.Fatalf("ParseRunner() error = %v", err)
	}

	if cfg.Progression.BaseSpeed != 10 {
		t.Errorf("BaseSpeed = %v, expected 10", cfg.Progression.BaseSpeed)
	}
	if cfg.Progression.LevelScore != 500 {
		t.Errorf("LevelScore = %d, expected default 500", cfg.Progression.LevelScore)
	}
	if got := cfg.Preset(DifficultyInsane); got.SpeedMultiplier != 2.0 || got.SpawnRate != 0.4 {
		t.Errorf("insane preset = %+v, expected {2.0 0.4}", got)
	}
	if got := cfg.Preset(DifficultyEasy); got.SpeedMultiplier != 0.7 {
		t.Errorf("easy preset should keep default, got %+v", got)
	}
}

func TestParseRunnerRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero arena", "arena:\n  width: 0\n", "arena size"},
		{"inverted obstacle interval", "obstacles:\n  min_interval: 200\n  max_interval: 100\n", "obstacle intervals"},
		{"chances above one", "powerups:\n  shield_chance: 0.8\n  slow_mo_chance: 0.5\n", "shield_chance"},
		{"negative spawn rate", "difficulty:\n  hard:\n    speed_multiplier: 1\n    spawn_rate: -1\n", "difficulty \"hard\""},
		{"bad yaml", "arena: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRunner([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  x: 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if cfg.Player.X != 150 {
		t.Errorf("Player.X = %v, expected 150", cfg.Player.X)
	}

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadRunner() with missing custom path should fail")
	}
}

func TestLoadRunnerSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("expected embedded defaults when no config files exist")
	}

	// Local configs directory
	writeFile(t, filepath.Join(work, "configs", "runner.yaml"), "arena:\n  star_count: 10\n")
	cfg, _ = LoadRunner("")
	if cfg.Arena.StarCount != 10 {
		t.Errorf("StarCount = %d, expected 10 from ./configs", cfg.Arena.StarCount)
	}

	// User config directory wins over local
	writeFile(t, filepath.Join(home, ".neonrunner", "configs", "runner.yaml"), "arena:\n  star_count: 20\n")
	cfg, _ = LoadRunner("")
	if cfg.Arena.StarCount != 20 {
		t.Errorf("StarCount = %d, expected 20 from user config", cfg.Arena.StarCount)
	}

	// A broken user file is skipped
	writeFile(t, filepath.Join(home, ".neonrunner", "configs", "runner.yaml"), "arena: [")
	cfg, _ = LoadRunner("")
	if cfg.Arena.StarCount != 10 {
		t.Errorf("StarCount = %d, expected fallback to ./configs", cfg.Arena.StarCount)
	}
}

func TestMarshalRunnerRoundTrip(t *testing.T) {
	data, err := MarshalRunner(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("MarshalRunner() error = %v", err)
	}
	cfg, err := ParseRunner(data)
	if err != nil {
		t.Fatalf("ParseRunner() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("marshalled defaults should parse back to the defaults")
	}
}

func TestProfileFallback(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if got := cfg.Profile(EffectsLow); got.Trails {
		t.Error("low profile should disable trails")
	}
	if got := cfg.Profile("ultra"); got != cfg.Effects["high"] {
		t.Errorf("unknown profile = %+v, expected high", got)
	}
	if got := cfg.Preset("nightmare"); got != cfg.Difficulty["normal"] {
		t.Errorf("unknown preset = %+v, expected normal", got)
	}

	var empty RunnerConfig
	if got := empty.Preset(DifficultyHard); got.SpeedMultiplier != 1 || got.SpawnRate != 1 {
		t.Errorf("empty config preset = %+v, expected identity", got)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if cfg.PowerUps.ShieldDuration().Milliseconds() != 5000 {
		t.Errorf("ShieldDuration = %v", cfg.PowerUps.ShieldDuration())
	}
	if cfg.PowerUps.SlowMoDuration().Milliseconds() != 3000 {
		t.Errorf("SlowMoDuration = %v", cfg.PowerUps.SlowMoDuration())
	}
	if cfg.PowerUps.MultiplierDuration().Milliseconds() != 8000 {
		t.Errorf("MultiplierDuration = %v", cfg.PowerUps.MultiplierDuration())
	}
	if cfg.Feedback.ShakeDuration().Milliseconds() != 100 {
		t.Errorf("ShakeDuration = %v", cfg.Feedback.ShakeDuration())
	}
	if cfg.Feedback.PopupDuration().Milliseconds() != 3000 {
		t.Errorf("PopupDuration = %v", cfg.Feedback.PopupDuration())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
