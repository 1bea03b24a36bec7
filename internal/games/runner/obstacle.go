package runner

import (
	"math"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Obstacle is a spike sitting on the floor or hanging from the ceiling.
type Obstacle struct {
	Lane   Lane
	X, Y   float64 // Y is the lane line the spike is anchored to
	Size   float64
	Speed  float64 // fixed at spawn
	Passed bool
}

func newObstacle(lane Lane, speed float64, arena config.ArenaConfig, cfg config.ObstacleConfig) Obstacle {
	o := Obstacle{
		Lane:  lane,
		X:     arena.Width,
		Size:  cfg.Size,
		Speed: speed,
	}
	if lane == LaneFloor {
		o.Y = arena.Height - cfg.LaneOffset
	} else {
		o.Y = cfg.LaneOffset
	}
	return o
}

// Update moves the obstacle left. The first time its trailing edge clears
// playerX it is marked passed and reports the horizontal gap at that moment.
func (o *Obstacle) Update(slowFactor, playerX float64) (passed bool, gap float64) {
	o.X -= o.Speed * slowFactor

	if !o.Passed && o.X+o.Size < playerX {
		o.Passed = true
		return true, math.Abs(o.X + o.Size - playerX)
	}
	return false, 0
}

// Box returns the collision box: above the floor line or below the ceiling line.
func (o Obstacle) Box() core.Box {
	if o.Lane == LaneFloor {
		return core.NewBox(o.X, o.Y-o.Size, o.Size, o.Size)
	}
	return core.NewBox(o.X, o.Y, o.Size, o.Size)
}

// OffScreen reports whether the obstacle has left the arena.
func (o Obstacle) OffScreen() bool {
	return o.X+o.Size < 0
}
