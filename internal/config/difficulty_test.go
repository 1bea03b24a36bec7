package config

import "testing"

func TestDifficultyLevelAndSpeed(t *testing.T) {
	dm := NewDifficultyManager(DefaultRunnerConfig(), DifficultyNormal)

	tests := []struct {
		score     int
		level     int
		baseSpeed float64
	}{
		{0, 1, 8},
		{499, 1, 8},
		{500, 2, 8.5},
		{999, 2, 8.5},
		{1000, 3, 9},
		{2600, 6, 10.5},
		{-10, 1, 8},
	}

	for _, tc := range tests {
		if got := dm.Level(tc.score); got != tc.level {
			t.Errorf("Level(%d) = %d, expected %d", tc.score, got, tc.level)
		}
		if got := dm.BaseSpeed(tc.score); got != tc.baseSpeed {
			t.Errorf("BaseSpeed(%d) = %v, expected %v", tc.score, got, tc.baseSpeed)
		}
	}
}

func TestDifficultyPresets(t *testing.T) {
	cfg := DefaultRunnerConfig()

	tests := []struct {
		difficulty Difficulty
		speed      float64
		threshold  float64
	}{
		{DifficultyEasy, 8 * 0.7, 60 * 1.5},
		{DifficultyNormal, 8, 60},
		{DifficultyHard, 8 * 1.3, 60 * 0.7},
		{DifficultyInsane, 8 * 1.6, 60 * 0.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			dm := NewDifficultyManager(cfg, tc.difficulty)
			if got := dm.ObstacleSpeed(8); !almostEqual(got, tc.speed) {
				t.Errorf("ObstacleSpeed(8) = %v, expected %v", got, tc.speed)
			}
			if got := dm.SpawnThreshold(60); !almostEqual(got, tc.threshold) {
				t.Errorf("SpawnThreshold(60) = %v, expected %v", got, tc.threshold)
			}
		})
	}
}

func TestLevelCrossed(t *testing.T) {
	dm := NewDifficultyManager(DefaultRunnerConfig(), DifficultyNormal)

	if !dm.LevelCrossed(499, 500) {
		t.Error("499 -> 500 should cross into level 2")
	}
	if dm.LevelCrossed(500, 501) {
		t.Error("500 -> 501 stays in level 2")
	}
	if dm.LevelCrossed(500, 0) {
		t.Error("a score reset is not a level crossing")
	}
}

func TestSetPreset(t *testing.T) {
	dm := NewDifficultyManager(DefaultRunnerConfig(), DifficultyNormal)
	dm.SetPreset(DifficultyPreset{SpeedMultiplier: 2, SpawnRate: 0.25})

	if got := dm.ObstacleSpeed(10); got != 20 {
		t.Errorf("ObstacleSpeed(10) = %v, expected 20", got)
	}
	if got := dm.Preset().SpawnRate; got != 0.25 {
		t.Errorf("SpawnRate = %v, expected 0.25", got)
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
