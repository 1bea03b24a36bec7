package runner

import (
	"time"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Lane is one of the two horizontal bands entities travel in.
type Lane int

const (
	LaneFloor Lane = iota
	LaneCeiling
)

// String returns the lane name.
func (l Lane) String() string {
	if l == LaneCeiling {
		return "ceiling"
	}
	return "floor"
}

// Opposite returns the other lane.
func (l Lane) Opposite() Lane {
	if l == LaneFloor {
		return LaneCeiling
	}
	return LaneFloor
}

// Buff is a timed player effect.
type Buff struct {
	Active    bool
	Remaining time.Duration
}

// Activate turns the buff on for d, replacing any remaining time.
func (b *Buff) Activate(d time.Duration) {
	b.Active = true
	b.Remaining = d
}

// Clear turns the buff off.
func (b *Buff) Clear() {
	b.Active = false
	b.Remaining = 0
}

// tick counts the buff down and clears it at zero.
func (b *Buff) tick(dt time.Duration) {
	if !b.Active || b.Remaining <= 0 {
		return
	}
	b.Remaining -= dt
	if b.Remaining <= 0 {
		b.Clear()
	}
}

const (
	pulseMin  = 0.9
	pulseMax  = 1.1
	pulseStep = 0.01
)

// Player is the gravity-flipping runner.
type Player struct {
	X, Y          float64 // Y is the vertical center
	Width, Height float64
	Lane          Lane

	Rotation       float64 // degrees, visual only
	TargetRotation float64
	Pulse          float64 // visual scale
	pulseDir       float64

	Shield         Buff
	SlowMo         Buff
	Multiplier     float64
	MultiplierTime time.Duration

	cfg config.PlayerConfig
}

func newPlayer(cfg config.PlayerConfig) Player {
	p := Player{cfg: cfg}
	p.Reset()
	return p
}

// Reset puts the player back at the top edge, on the floor lane, without buffs.
// The first ticks of a run drop it into its lane.
func (p *Player) Reset() {
	*p = Player{
		X:          p.cfg.X,
		Y:          0,
		Width:      p.cfg.Width,
		Height:     p.cfg.Height,
		Lane:       LaneFloor,
		Pulse:      1,
		pulseDir:   1,
		Multiplier: 1,
		cfg:        p.cfg,
	}
}

// TargetY returns the vertical center the player is heading for.
func (p *Player) TargetY(arenaH float64) float64 {
	if p.Lane == LaneCeiling {
		return p.cfg.LaneOffset
	}
	return arenaH - p.cfg.LaneOffset
}

// Update moves the player toward its lane and counts buffs down.
func (p *Player) Update(dt time.Duration, arenaH float64) {
	p.Y += (p.TargetY(arenaH) - p.Y) * p.cfg.FollowRate
	p.Rotation += (p.TargetRotation - p.Rotation) * p.cfg.RotationRate

	p.Pulse += pulseStep * p.pulseDir
	if p.Pulse > pulseMax || p.Pulse < pulseMin {
		p.pulseDir = -p.pulseDir
	}

	p.Shield.tick(dt)
	p.SlowMo.tick(dt)

	if p.Multiplier > 1 && p.MultiplierTime > 0 {
		p.MultiplierTime -= dt
		if p.MultiplierTime <= 0 {
			p.MultiplierTime = 0
			p.Multiplier = 1
		}
	}
}

// ToggleGravity flips the player to the other lane.
func (p *Player) ToggleGravity() {
	p.Lane = p.Lane.Opposite()
	p.TargetRotation += p.cfg.FlipDegrees
}

// Box returns the collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y-p.Height/2, p.Width, p.Height)
}

// ScoreRate returns the points earned per tick.
func (p Player) ScoreRate() int {
	return int(p.Multiplier)
}
