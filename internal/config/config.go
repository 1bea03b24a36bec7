// Package config provides YAML-based tuning configuration, persisted player
// settings and difficulty management for Neon Runner.
package config

import "time"

// RunnerConfig contains all tuning values for the runner simulation.
// Distances are world units, speeds are units per tick.
type RunnerConfig struct {
	Arena       ArenaConfig                 `yaml:"arena"`
	Player      PlayerConfig                `yaml:"player"`
	Obstacles   ObstacleConfig              `yaml:"obstacles"`
	PowerUps    PowerUpConfig               `yaml:"powerups"`
	Particles   ParticleConfig              `yaml:"particles"`
	Progression ProgressionConfig           `yaml:"progression"`
	Feedback    FeedbackConfig              `yaml:"feedback"`
	Difficulty  map[string]DifficultyPreset `yaml:"difficulty"`
	Effects     map[string]EffectsProfile   `yaml:"effects"`
}

// ArenaConfig defines the world size.
type ArenaConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	StarCount int     `yaml:"star_count"`
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	LaneOffset   float64 `yaml:"lane_offset"`   // distance of the lane line from the arena edge
	FollowRate   float64 `yaml:"follow_rate"`   // fraction of remaining distance covered per tick
	RotationRate float64 `yaml:"rotation_rate"` // fraction of remaining rotation covered per tick
	FlipDegrees  float64 `yaml:"flip_degrees"`
	FlipBurst    int     `yaml:"flip_burst"`
	TrailChance  float64 `yaml:"trail_chance"`
	TrailCount   int     `yaml:"trail_count"`
}

// ObstacleConfig defines obstacles and their spawn schedule.
type ObstacleConfig struct {
	Size            float64 `yaml:"size"`
	LaneOffset      float64 `yaml:"lane_offset"`
	SlowMoFactor    float64 `yaml:"slow_mo_factor"`
	PerfectGap      float64 `yaml:"perfect_gap"` // near-miss threshold
	PerfectBurst    int     `yaml:"perfect_burst"`
	InitialInterval int     `yaml:"initial_interval"` // ticks
	MinInterval     int     `yaml:"min_interval"`
	MaxInterval     int     `yaml:"max_interval"`
}

// PowerUpConfig defines power-ups, their effects and spawn schedule.
type PowerUpConfig struct {
	Size            float64 `yaml:"size"`
	LaneOffset      float64 `yaml:"lane_offset"`
	SpeedFactor     float64 `yaml:"speed_factor"` // relative to base speed
	ShieldChance    float64 `yaml:"shield_chance"`
	SlowMoChance    float64 `yaml:"slow_mo_chance"`
	Spin            float64 `yaml:"spin"`
	BobAmplitude    float64 `yaml:"bob_amplitude"`
	BobFrequency    float64 `yaml:"bob_frequency"` // radians per elapsed millisecond
	CollectBurst    int     `yaml:"collect_burst"`
	ShieldMS        int     `yaml:"shield_ms"`
	SlowMoMS        int     `yaml:"slow_mo_ms"`
	MultiplierMS    int     `yaml:"multiplier_ms"`
	MultiplierValue float64 `yaml:"multiplier_value"`
	InitialInterval int     `yaml:"initial_interval"` // ticks
	MinInterval     int     `yaml:"min_interval"`
	MaxInterval     int     `yaml:"max_interval"`
}

// ParticleConfig defines cosmetic particle physics.
type ParticleConfig struct {
	MaxVelocity float64 `yaml:"max_velocity"`
	Gravity     float64 `yaml:"gravity"`
	Drag        float64 `yaml:"drag"`
	MinDecay    float64 `yaml:"min_decay"`
	DecayRange  float64 `yaml:"decay_range"`
	MinSize     float64 `yaml:"min_size"`
	SizeRange   float64 `yaml:"size_range"`
}

// ProgressionConfig defines score driven levels and speed.
type ProgressionConfig struct {
	LevelScore int     `yaml:"level_score"`
	BaseSpeed  float64 `yaml:"base_speed"`
	SpeedStep  float64 `yaml:"speed_step"`
	LevelBurst int     `yaml:"level_burst"`
	LevelShake float64 `yaml:"level_shake"`
}

// FeedbackConfig defines collision and notification effects.
type FeedbackConfig struct {
	ShieldBurst int     `yaml:"shield_burst"`
	CrashBurst  int     `yaml:"crash_burst"`
	CrashShake  float64 `yaml:"crash_shake"`
	ShakeMS     int     `yaml:"shake_ms"`
	PopupMS     int     `yaml:"popup_ms"`
}

// DifficultyPreset scales obstacle speed and spawn interval.
type DifficultyPreset struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	SpawnRate       float64 `yaml:"spawn_rate"`
}

// EffectsProfile controls cosmetic detail for a quality level.
type EffectsProfile struct {
	Particles int  `yaml:"particles"` // particles drawn per frame
	Glow      int  `yaml:"glow"`
	Trails    bool `yaml:"trails"`
}

// ShieldDuration returns the shield buff length.
func (c PowerUpConfig) ShieldDuration() time.Duration {
	return time.Duration(c.ShieldMS) * time.Millisecond
}

// SlowMoDuration returns the slow motion buff length.
func (c PowerUpConfig) SlowMoDuration() time.Duration {
	return time.Duration(c.SlowMoMS) * time.Millisecond
}

// MultiplierDuration returns the score multiplier buff length.
func (c PowerUpConfig) MultiplierDuration() time.Duration {
	return time.Duration(c.MultiplierMS) * time.Millisecond
}

// ShakeDuration returns how long a screen shake lasts.
func (c FeedbackConfig) ShakeDuration() time.Duration {
	return time.Duration(c.ShakeMS) * time.Millisecond
}

// PopupDuration returns how long an achievement popup stays visible.
func (c FeedbackConfig) PopupDuration() time.Duration {
	return time.Duration(c.PopupMS) * time.Millisecond
}

// Preset returns the difficulty preset for d, falling back to normal.
func (c RunnerConfig) Preset(d Difficulty) DifficultyPreset {
	if p, ok := c.Difficulty[string(d)]; ok {
		return p
	}
	if p, ok := c.Difficulty[string(DifficultyNormal)]; ok {
		return p
	}
	return DifficultyPreset{SpeedMultiplier: 1, SpawnRate: 1}
}

// Profile returns the effects profile for q, falling back to high.
func (c RunnerConfig) Profile(q EffectsQuality) EffectsProfile {
	if p, ok := c.Effects[string(q)]; ok {
		return p
	}
	if p, ok := c.Effects[string(EffectsHigh)]; ok {
		return p
	}
	return EffectsProfile{Particles: 100, Glow: 30, Trails: true}
}
