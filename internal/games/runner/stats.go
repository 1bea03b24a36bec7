package runner

import "time"

// Stats are cumulative statistics across sessions.
type Stats struct {
	GamesPlayed       int `json:"gamesPlayed"`
	TotalTimePlayed   int `json:"totalTimePlayed"` // seconds
	ObstaclesDodged   int `json:"obstaclesDodged"`
	PowerUpsCollected int `json:"powerUpsCollected"`
	PerfectDodges     int `json:"perfectDodges"`
	HighScore         int `json:"highScore"`
}

// TimePlayed returns the total play time as a duration.
func (s Stats) TimePlayed() time.Duration {
	return time.Duration(s.TotalTimePlayed) * time.Second
}

// Session is the transient state of one run.
type Session struct {
	Score        int
	Level        int
	Combo        int
	MaxCombo     int
	Elapsed      time.Duration
	NewHighScore bool
}

// ProgressSaver persists statistics and achievement flags.
// unlocked is index-aligned with Achievements.
type ProgressSaver interface {
	SaveProgress(stats Stats, unlocked []bool) error
}
