package runner

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Snapshot is a read-only copy of everything the presentation layer draws.
type Snapshot struct {
	Tick      uint64
	Phase     core.Phase
	Session   Session
	Stats     Stats
	Settings  config.Settings
	Effects   config.EffectsProfile
	BaseSpeed float64

	Player    Player
	Obstacles []Obstacle
	PowerUps  []PowerUp
	Particles []Particle
	Stars     []Star

	ShakeX, ShakeY float64

	// Popup is the most recent achievement still on screen, or nil.
	Popup          *Achievement
	PopupRemaining float64 // 1 when shown, falls to 0
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Session:   g.session,
		Stats:     g.stats,
		Settings:  g.settings,
		Effects:   g.profile,
		BaseSpeed: g.baseSpeed,
		Player:    g.player,
		Obstacles: append([]Obstacle(nil), g.obstacles...),
		PowerUps:  append([]PowerUp(nil), g.powerUps...),
		Particles: append([]Particle(nil), g.particles.Particles()...),
		Stars:     append([]Star(nil), g.stars.Stars()...),
		ShakeX:    g.shakeX,
		ShakeY:    g.shakeY,
	}
	if g.popup != nil {
		a := *g.popup
		snap.Popup = &a
		total := g.ticksFor(g.cfg.Feedback.PopupDuration())
		snap.PopupRemaining = float64(g.popupTicks) / float64(total)
	}
	return snap
}

// Hash returns a hash of the gameplay state for determinism testing.
// Cosmetic state (particles, stars, shake) is left out.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "T:%d;P:%d;", snap.Tick, snap.Phase)

	s := snap.Session
	fmt.Fprintf(h, "S:%d:%d:%d:%d:%d:%v;", s.Score, s.Level, s.Combo, s.MaxCombo, s.Elapsed, s.NewHighScore)

	st := snap.Stats
	fmt.Fprintf(h, "ST:%d:%d:%d:%d:%d:%d;",
		st.GamesPlayed, st.TotalTimePlayed, st.ObstaclesDodged, st.PowerUpsCollected, st.PerfectDodges, st.HighScore)

	p := snap.Player
	fmt.Fprintf(h, "PL:%x:%d:%v:%d:%v:%d:%x:%d;",
		math.Float64bits(p.Y), p.Lane,
		p.Shield.Active, p.Shield.Remaining,
		p.SlowMo.Active, p.SlowMo.Remaining,
		math.Float64bits(p.Multiplier), p.MultiplierTime)

	fmt.Fprintf(h, "O:")
	for _, o := range snap.Obstacles {
		fmt.Fprintf(h, "%d:%x:%x:%v,", o.Lane, math.Float64bits(o.X), math.Float64bits(o.Speed), o.Passed)
	}

	fmt.Fprintf(h, ";U:")
	for _, u := range snap.PowerUps {
		fmt.Fprintf(h, "%d:%d:%x:%x:%v,", u.Kind, u.Lane, math.Float64bits(u.X), math.Float64bits(u.Y), u.Collected)
	}

	return h.Sum64()
}
