package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// PowerUpKind identifies a power-up effect.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpSlowMo
	PowerUpMultiplier
)

// String returns the kind name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpSlowMo:
		return "slowMo"
	case PowerUpMultiplier:
		return "multiplier"
	default:
		return "unknown"
	}
}

// Color returns the kind's display color.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpShield:
		return core.ColorNeonCyan
	case PowerUpSlowMo:
		return core.ColorPurple
	default:
		return core.ColorGold
	}
}

// pickPowerUpKind maps a uniform roll in [0, 1) to a kind.
func pickPowerUpKind(roll float64, cfg config.PowerUpConfig) PowerUpKind {
	switch {
	case roll < cfg.ShieldChance:
		return PowerUpShield
	case roll < cfg.ShieldChance+cfg.SlowMoChance:
		return PowerUpSlowMo
	default:
		return PowerUpMultiplier
	}
}

// PowerUp is a collectible orb.
type PowerUp struct {
	Kind      PowerUpKind
	Lane      Lane
	X, Y      float64
	Size      float64
	Speed     float64
	Rotation  float64 // radians, visual only
	Collected bool
}

func newPowerUp(kind PowerUpKind, lane Lane, baseSpeed float64, arena config.ArenaConfig, cfg config.PowerUpConfig) PowerUp {
	p := PowerUp{
		Kind:  kind,
		Lane:  lane,
		X:     arena.Width,
		Size:  cfg.Size,
		Speed: baseSpeed * cfg.SpeedFactor,
	}
	if lane == LaneFloor {
		p.Y = arena.Height - cfg.LaneOffset
	} else {
		p.Y = cfg.LaneOffset
	}
	return p
}

// Update moves the power-up left and bobs it on a sine of elapsed run time.
func (p *PowerUp) Update(slowFactor float64, elapsed time.Duration, cfg config.PowerUpConfig) {
	p.X -= p.Speed * slowFactor
	p.Rotation += cfg.Spin
	ms := float64(elapsed) / float64(time.Millisecond)
	p.Y += math.Sin(ms*cfg.BobFrequency) * cfg.BobAmplitude
}

// Box returns the collision box.
func (p PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y-p.Size, p.Size*2, p.Size*2)
}

// OffScreen reports whether the power-up has left the arena.
func (p PowerUp) OffScreen() bool {
	return p.X+p.Size < 0
}

// Collect applies the effect to pl. It returns false if the power-up was
// already collected. Durations are reset, never stacked.
func (p *PowerUp) Collect(pl *Player, cfg config.PowerUpConfig) bool {
	if p.Collected {
		return false
	}
	p.Collected = true

	switch p.Kind {
	case PowerUpShield:
		pl.Shield.Activate(cfg.ShieldDuration())
	case PowerUpSlowMo:
		pl.SlowMo.Activate(cfg.SlowMoDuration())
	case PowerUpMultiplier:
		pl.Multiplier = cfg.MultiplierValue
		pl.MultiplierTime = cfg.MultiplierDuration()
	}
	return true
}
