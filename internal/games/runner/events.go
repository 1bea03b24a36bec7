package runner

import (
	"time"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// Event is something notable that happened during a tick.
// The presentation layer uses events for sound and notifications.
type Event interface {
	runnerEvent()
}

// GameStartedEvent is emitted when a run starts or restarts.
type GameStartedEvent struct {
	GamesPlayed int
}

func (GameStartedEvent) runnerEvent() {}

// GravityFlippedEvent is emitted when the player changes lane.
type GravityFlippedEvent struct {
	Lane Lane
}

func (GravityFlippedEvent) runnerEvent() {}

// PowerUpCollectedEvent is emitted when a power-up is picked up.
type PowerUpCollectedEvent struct {
	Kind PowerUpKind
}

func (PowerUpCollectedEvent) runnerEvent() {}

// ShieldBrokenEvent is emitted when a shield absorbs an obstacle.
type ShieldBrokenEvent struct{}

func (ShieldBrokenEvent) runnerEvent() {}

// PerfectDodgeEvent is emitted on a near-miss pass.
type PerfectDodgeEvent struct {
	Combo int
	Gap   float64
}

func (PerfectDodgeEvent) runnerEvent() {}

// LevelUpEvent is emitted once per level boundary crossing.
type LevelUpEvent struct {
	Level int
}

func (LevelUpEvent) runnerEvent() {}

// AchievementUnlockedEvent is emitted once per newly unlocked achievement.
type AchievementUnlockedEvent struct {
	Achievement Achievement
}

func (AchievementUnlockedEvent) runnerEvent() {}

// GameOverEvent is emitted when the run ends.
type GameOverEvent struct {
	Score        int
	Level        int
	MaxCombo     int
	Duration     time.Duration
	Difficulty   config.Difficulty
	NewHighScore bool
}

func (GameOverEvent) runnerEvent() {}
