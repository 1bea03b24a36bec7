package config

// DifficultyManager derives level, speed and spawn rate from score and the
// selected difficulty.
type DifficultyManager struct {
	prog   ProgressionConfig
	preset DifficultyPreset
}

// NewDifficultyManager creates a difficulty manager for the given difficulty.
func NewDifficultyManager(cfg RunnerConfig, d Difficulty) *DifficultyManager {
	return &DifficultyManager{
		prog:   cfg.Progression,
		preset: cfg.Preset(d),
	}
}

// SetPreset replaces the active difficulty preset.
func (d *DifficultyManager) SetPreset(p DifficultyPreset) {
	d.preset = p
}

// Preset returns the active difficulty preset.
func (d *DifficultyManager) Preset() DifficultyPreset {
	return d.preset
}

// tier returns floor(score / levelScore), never negative.
func (d *DifficultyManager) tier(score int) int {
	if score <= 0 || d.prog.LevelScore <= 0 {
		return 0
	}
	return score / d.prog.LevelScore
}

// Level returns the 1-based level for a score.
func (d *DifficultyManager) Level(score int) int {
	return d.tier(score) + 1
}

// BaseSpeed returns the obstacle base speed for a score.
func (d *DifficultyManager) BaseSpeed(score int) float64 {
	return d.prog.BaseSpeed + d.prog.SpeedStep*float64(d.tier(score))
}

// ObstacleSpeed scales a base speed by the difficulty speed multiplier.
func (d *DifficultyManager) ObstacleSpeed(baseSpeed float64) float64 {
	return baseSpeed * d.preset.SpeedMultiplier
}

// SpawnThreshold returns the tick count at which an obstacle spawns for a
// drawn interval.
func (d *DifficultyManager) SpawnThreshold(interval int) float64 {
	return float64(interval) * d.preset.SpawnRate
}

// LevelCrossed reports whether moving from oldScore to newScore enters a
// higher level.
func (d *DifficultyManager) LevelCrossed(oldScore, newScore int) bool {
	return d.Level(newScore) > d.Level(oldScore)
}

