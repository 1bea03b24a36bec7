package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner tuning.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Arena: ArenaConfig{
			Width:     1280,
			Height:    720,
			StarCount: 100,
		},
		Player: PlayerConfig{
			X:            100,
			Width:        40,
			Height:       40,
			LaneOffset:   100,
			FollowRate:   0.15,
			RotationRate: 0.1,
			FlipDegrees:  180,
			FlipBurst:    15,
			TrailChance:  0.3,
			TrailCount:   3,
		},
		Obstacles: ObstacleConfig{
			Size:            30,
			LaneOffset:      100,
			SlowMoFactor:    0.3,
			PerfectGap:      20,
			PerfectBurst:    10,
			InitialInterval: 60,
			MinInterval:     60,
			MaxInterval:     120,
		},
		PowerUps: PowerUpConfig{
			Size:            20,
			LaneOffset:      150,
			SpeedFactor:     0.8,
			ShieldChance:    0.4,
			SlowMoChance:    0.3,
			Spin:            0.05,
			BobAmplitude:    0.5,
			BobFrequency:    0.003,
			CollectBurst:    25,
			ShieldMS:        5000,
			SlowMoMS:        3000,
			MultiplierMS:    8000,
			MultiplierValue: 2,
			InitialInterval: 300,
			MinInterval:     300,
			MaxInterval:     499,
		},
		Particles: ParticleConfig{
			MaxVelocity: 4,
			Gravity:     0.2,
			Drag:        0.98,
			MinDecay:    0.01,
			DecayRange:  0.02,
			MinSize:     2,
			SizeRange:   4,
		},
		Progression: ProgressionConfig{
			LevelScore: 500,
			BaseSpeed:  8,
			SpeedStep:  0.5,
			LevelBurst: 50,
			LevelShake: 15,
		},
		Feedback: FeedbackConfig{
			ShieldBurst: 30,
			CrashBurst:  50,
			CrashShake:  20,
			ShakeMS:     100,
			PopupMS:     3000,
		},
		Difficulty: map[string]DifficultyPreset{
			string(DifficultyEasy):   {SpeedMultiplier: 0.7, SpawnRate: 1.5},
			string(DifficultyNormal): {SpeedMultiplier: 1.0, SpawnRate: 1.0},
			string(DifficultyHard):   {SpeedMultiplier: 1.3, SpawnRate: 0.7},
			string(DifficultyInsane): {SpeedMultiplier: 1.6, SpawnRate: 0.5},
		},
		Effects: map[string]EffectsProfile{
			string(EffectsHigh):   {Particles: 100, Glow: 30, Trails: true},
			string(EffectsMedium): {Particles: 50, Glow: 15, Trails: true},
			string(EffectsLow):    {Particles: 20, Glow: 10, Trails: false},
		},
	}
}

// DefaultRunnerYAML returns the embedded default tuning file.
func DefaultRunnerYAML() []byte {
	return defaultRunnerYAML
}
