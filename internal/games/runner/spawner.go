package runner

import (
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// SpawnResult holds whatever the spawner created on one tick.
type SpawnResult struct {
	Obstacle *Obstacle
	PowerUp  *PowerUp
}

// Spawner schedules obstacles and power-ups with tick-counted timers.
// Obstacle intervals are scaled by the difficulty spawn rate, power-up
// intervals are not.
type Spawner struct {
	rng        *rand.Rand
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager

	obstacleTimer int
	nextObstacle  int
	powerUpTimer  int
	nextPowerUp   int
}

// NewSpawner creates a spawner drawing lanes, kinds and intervals from rng.
func NewSpawner(cfg config.RunnerConfig, diff *config.DifficultyManager, rng *rand.Rand) *Spawner {
	s := &Spawner{
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
	s.Reset()
	return s
}

// Reset restores both timers and the initial intervals.
func (s *Spawner) Reset() {
	s.obstacleTimer = 0
	s.nextObstacle = s.cfg.Obstacles.InitialInterval
	s.powerUpTimer = 0
	s.nextPowerUp = s.cfg.PowerUps.InitialInterval
}

// Tick advances both timers and spawns at most one of each entity.
// baseSpeed is the current progression speed before difficulty scaling.
func (s *Spawner) Tick(baseSpeed float64) SpawnResult {
	var res SpawnResult

	s.obstacleTimer++
	if float64(s.obstacleTimer) >= s.difficulty.SpawnThreshold(s.nextObstacle) {
		o := newObstacle(s.randomLane(), s.difficulty.ObstacleSpeed(baseSpeed), s.cfg.Arena, s.cfg.Obstacles)
		res.Obstacle = &o
		s.obstacleTimer = 0
		s.nextObstacle = s.interval(s.cfg.Obstacles.MinInterval, s.cfg.Obstacles.MaxInterval)
	}

	s.powerUpTimer++
	if s.powerUpTimer >= s.nextPowerUp {
		lane := s.randomLane()
		kind := pickPowerUpKind(s.rng.Float64(), s.cfg.PowerUps)
		p := newPowerUp(kind, lane, baseSpeed, s.cfg.Arena, s.cfg.PowerUps)
		res.PowerUp = &p
		s.powerUpTimer = 0
		s.nextPowerUp = s.interval(s.cfg.PowerUps.MinInterval, s.cfg.PowerUps.MaxInterval)
	}

	return res
}

// NextObstacle returns the drawn obstacle interval in ticks, before spawn rate scaling.
func (s *Spawner) NextObstacle() int {
	return s.nextObstacle
}

// NextPowerUp returns the drawn power-up interval in ticks.
func (s *Spawner) NextPowerUp() int {
	return s.nextPowerUp
}

func (s *Spawner) randomLane() Lane {
	if s.rng.Float64() < 0.5 {
		return LaneFloor
	}
	return LaneCeiling
}

// interval draws uniformly from [min, max].
func (s *Spawner) interval(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
