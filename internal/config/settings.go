package config

import "fmt"

// Difficulty is a named difficulty level selected by the player.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
	DifficultyInsane Difficulty = "insane"
)

// Difficulties lists the levels in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane}

// EffectsQuality is a named cosmetic quality level.
type EffectsQuality string

const (
	EffectsLow    EffectsQuality = "low"
	EffectsMedium EffectsQuality = "medium"
	EffectsHigh   EffectsQuality = "high"
)

// EffectsLevels lists the quality levels in menu order.
var EffectsLevels = []EffectsQuality{EffectsLow, EffectsMedium, EffectsHigh}

// Settings are the player preferences persisted between sessions.
type Settings struct {
	Difficulty      Difficulty     `json:"difficulty" yaml:"difficulty"`
	Effects         EffectsQuality `json:"effects" yaml:"effects"`
	ParticleDensity int            `json:"particleDensity" yaml:"particle_density"` // percent, 0-100
	ScreenShake     bool           `json:"screenShake" yaml:"screen_shake"`
}

// DefaultSettings returns the settings used when nothing is stored.
func DefaultSettings() Settings {
	return Settings{
		Difficulty:      DifficultyNormal,
		Effects:         EffectsHigh,
		ParticleDensity: 75,
		ScreenShake:     true,
	}
}

// Normalize replaces unknown values with defaults and clamps the density.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if !s.Difficulty.Valid() {
		s.Difficulty = def.Difficulty
	}
	if !s.Effects.Valid() {
		s.Effects = def.Effects
	}
	s.ParticleDensity = clampI(s.ParticleDensity, 0, 100)
	return s
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return indexOf(Difficulties, d) >= 0
}

// Next returns the following difficulty, wrapping around.
func (d Difficulty) Next() Difficulty {
	return cycle(Difficulties, d, 1)
}

// Prev returns the preceding difficulty, wrapping around.
func (d Difficulty) Prev() Difficulty {
	return cycle(Difficulties, d, -1)
}

// ParseDifficulty converts a name to a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(name)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or insane)", name)
	}
	return d, nil
}

// Valid reports whether q is a known quality level.
func (q EffectsQuality) Valid() bool {
	return indexOf(EffectsLevels, q) >= 0
}

// Next returns the following quality level, wrapping around.
func (q EffectsQuality) Next() EffectsQuality {
	return cycle(EffectsLevels, q, 1)
}

// Prev returns the preceding quality level, wrapping around.
func (q EffectsQuality) Prev() EffectsQuality {
	return cycle(EffectsLevels, q, -1)
}

func indexOf[T comparable](list []T, v T) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}

func cycle[T comparable](list []T, v T, step int) T {
	i := indexOf(list, v)
	if i < 0 {
		return list[0]
	}
	n := len(list)
	return list[((i+step)%n+n)%n]
}

func clampI(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
