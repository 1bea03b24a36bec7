package runner

import (
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Particle is a purely cosmetic spark.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  core.Color
	Life   float64 // 1 at birth, dead at <= 0
	Decay  float64 // life lost per tick
	Size   float64
}

// Update advances the particle by one tick.
func (p *Particle) Update(cfg config.ParticleConfig) {
	p.X += p.VX
	p.Y += p.VY
	p.VY += cfg.Gravity
	p.Life -= p.Decay
	p.VX *= cfg.Drag
}

// Dead reports whether the particle has faded out.
func (p Particle) Dead() bool {
	return p.Life <= 0
}

// particleSystem owns all live particles and scales bursts by density.
type particleSystem struct {
	cfg       config.ParticleConfig
	rng       *rand.Rand
	density   int // percent
	particles []Particle
}

func newParticleSystem(cfg config.ParticleConfig, rng *rand.Rand, density int) *particleSystem {
	return &particleSystem{
		cfg:     cfg,
		rng:     rng,
		density: density,
	}
}

// scaled returns floor(count * density / 100).
func (s *particleSystem) scaled(count int) int {
	if count <= 0 || s.density <= 0 {
		return 0
	}
	return count * s.density / 100
}

func (s *particleSystem) velocity(spread float64) float64 {
	return (s.rng.Float64() - 0.5) * 2 * spread
}

func (s *particleSystem) spawn(x, y, vx, vy float64, c core.Color) {
	s.particles = append(s.particles, Particle{
		X:     x,
		Y:     y,
		VX:    vx,
		VY:    vy,
		Color: c,
		Life:  1,
		Decay: s.rng.Float64()*s.cfg.DecayRange + s.cfg.MinDecay,
		Size:  s.rng.Float64()*s.cfg.SizeRange + s.cfg.MinSize,
	})
}

// Burst emits a density-scaled explosion and returns how many particles were created.
func (s *particleSystem) Burst(x, y float64, c core.Color, count int) int {
	n := s.scaled(count)
	for i := 0; i < n; i++ {
		vx := s.velocity(s.cfg.MaxVelocity)
		vy := s.velocity(s.cfg.MaxVelocity)
		s.spawn(x, y, vx, vy, c)
	}
	return n
}

// Trail emits a density-scaled wisp that drifts mostly vertically.
func (s *particleSystem) Trail(x, y float64, c core.Color, count int) int {
	n := s.scaled(count)
	for i := 0; i < n; i++ {
		vx := s.velocity(s.cfg.MaxVelocity)
		vy := s.velocity(1)
		s.spawn(x, y, vx, vy, c)
	}
	return n
}

// Update advances every particle.
func (s *particleSystem) Update() {
	for i := range s.particles {
		s.particles[i].Update(s.cfg)
	}
}

// Prune drops dead particles in place.
func (s *particleSystem) Prune() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		if !p.Dead() {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}

// Clear removes all particles.
func (s *particleSystem) Clear() {
	s.particles = s.particles[:0]
}

// SetDensity changes the burst scaling percentage.
func (s *particleSystem) SetDensity(density int) {
	s.density = density
}

// Particles returns the live particles.
func (s *particleSystem) Particles() []Particle {
	return s.particles
}
