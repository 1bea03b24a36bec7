// Package runner implements Neon Runner, a side-view game where the player
// flips gravity between the floor and the ceiling to dodge spikes.
package runner

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// StepResult is the outcome of one tick.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the tuning configuration.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithSettings sets the initial player settings.
func WithSettings(s config.Settings) Option {
	return func(g *Game) { g.settings = s.Normalize() }
}

// WithRand overrides the seeded random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithProgress restores persisted statistics and achievement flags.
func WithProgress(stats Stats, unlocked []bool) Option {
	return func(g *Game) {
		g.stats = stats
		g.unlocked = make([]bool, len(Achievements))
		copy(g.unlocked, unlocked)
	}
}

// WithSaver sets where progress is persisted at game over and on reset.
func WithSaver(s ProgressSaver) Option {
	return func(g *Game) { g.saver = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game owns the whole simulation state.
type Game struct {
	cfg        config.RunnerConfig
	rt         core.RuntimeConfig
	settings   config.Settings
	profile    config.EffectsProfile
	difficulty *config.DifficultyManager
	rng        *rand.Rand // gameplay: spawns, lanes, kinds
	fx         *rand.Rand // cosmetics: particles, trails, shake, stars
	saver      ProgressSaver
	logger     *log.Logger

	phase     core.Phase
	session   Session
	baseSpeed float64
	tick      uint64

	player    Player
	obstacles []Obstacle
	powerUps  []PowerUp
	particles *particleSystem
	stars     *starField
	spawner   *Spawner

	stats    Stats
	unlocked []bool

	shakeTicks     int
	shakeX, shakeY float64
	popup          *Achievement
	popupTicks     int

	events []Event
}

// New creates a game in the menu phase.
func New(rt core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      config.DefaultRunnerConfig(),
		settings: config.DefaultSettings(),
		unlocked: make([]bool, len(Achievements)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(seedOrNow(rt.Seed)))
	}
	g.reset(rt)
	return g
}

func seedOrNow(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Reset reseeds from rt and returns to the menu with a fresh world.
// Statistics, achievements and settings are kept.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(seedOrNow(rt.Seed)))
	g.reset(rt)
}

func (g *Game) reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.fx = rand.New(rand.NewSource(g.rng.Int63()))

	g.difficulty = config.NewDifficultyManager(g.cfg, g.settings.Difficulty)
	g.profile = g.cfg.Profile(g.settings.Effects)
	g.particles = newParticleSystem(g.cfg.Particles, g.fx, g.settings.ParticleDensity)
	g.stars = newStarField(g.cfg.Arena.StarCount, g.cfg.Arena.Width, g.cfg.Arena.Height, g.fx)
	g.spawner = NewSpawner(g.cfg, g.difficulty, g.rng)
	g.player = newPlayer(g.cfg.Player)

	g.phase = core.PhaseMenu
	g.session = Session{Level: 1}
	g.baseSpeed = g.cfg.Progression.BaseSpeed
	g.obstacles = g.obstacles[:0]
	g.powerUps = g.powerUps[:0]
	g.tick = 0
	g.shakeTicks, g.shakeX, g.shakeY = 0, 0, 0
	g.popup, g.popupTicks = nil, 0
}

// dt is the simulated time covered by one tick.
func (g *Game) dt() time.Duration {
	return g.rt.FrameDuration()
}

// ticksFor converts a duration to a tick countdown, at least one tick.
func (g *Game) ticksFor(d time.Duration) int {
	n := int(math.Round(float64(d) / float64(g.dt())))
	if n < 1 {
		n = 1
	}
	return n
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Step maps input to commands and advances the game by one tick.
// Events from commands issued directly since the last Step are included.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.handleInput(in)

	g.stars.Update()
	if g.phase == core.PhasePlaying {
		g.update()
	}
	if g.phase != core.PhasePaused {
		g.updateCosmetics()
	}
	g.tick++

	events := g.events
	g.events = nil
	return StepResult{State: g.State(), Events: events}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionStart) {
		g.Start()
	}
	if in.Has(core.ActionFlip) {
		switch g.phase {
		case core.PhasePlaying:
			g.ToggleGravity()
		case core.PhaseGameOver:
			g.Restart()
		}
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if in.Has(core.ActionRestart) {
		g.Restart()
	}
	if in.Has(core.ActionMenu) {
		g.QuitToMenu()
	}
}

// Start begins a run from the menu.
func (g *Game) Start() {
	if g.phase != core.PhaseMenu {
		return
	}
	g.startRun()
}

// Restart begins a new run after game over or from the pause panel.
func (g *Game) Restart() {
	if g.phase != core.PhaseGameOver && g.phase != core.PhasePaused {
		return
	}
	g.startRun()
}

func (g *Game) startRun() {
	g.phase = core.PhasePlaying
	g.session = Session{Level: 1}
	g.baseSpeed = g.cfg.Progression.BaseSpeed

	g.obstacles = g.obstacles[:0]
	g.powerUps = g.powerUps[:0]
	g.particles.Clear()
	g.spawner.Reset()
	g.player.Reset()

	g.stats.GamesPlayed++
	g.emit(GameStartedEvent{GamesPlayed: g.stats.GamesPlayed})
	g.logger.Debug("run started", "games", g.stats.GamesPlayed, "difficulty", g.settings.Difficulty)
}

// ToggleGravity flips the player. Only effective while playing.
func (g *Game) ToggleGravity() {
	if g.phase != core.PhasePlaying {
		return
	}
	g.player.ToggleGravity()
	g.particles.Burst(g.player.X+g.player.Width/2, g.player.Y, core.ColorNeonGreen, g.cfg.Player.FlipBurst)
	g.emit(GravityFlippedEvent{Lane: g.player.Lane})
}

// Pause freezes the simulation.
func (g *Game) Pause() {
	if g.phase == core.PhasePlaying {
		g.phase = core.PhasePaused
	}
}

// Resume continues a paused run.
func (g *Game) Resume() {
	if g.phase == core.PhasePaused {
		g.phase = core.PhasePlaying
	}
}

// TogglePause pauses while playing and resumes while paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case core.PhasePlaying:
		g.Pause()
	case core.PhasePaused:
		g.Resume()
	}
}

// QuitToMenu leaves a paused or finished run.
func (g *Game) QuitToMenu() {
	if g.phase == core.PhasePaused || g.phase == core.PhaseGameOver {
		g.phase = core.PhaseMenu
	}
}

// ResetStats zeroes all statistics, relocks every achievement and persists.
func (g *Game) ResetStats() {
	g.stats = Stats{}
	for i := range g.unlocked {
		g.unlocked[i] = false
	}
	g.persist()
}

// SetSettings applies new player settings. Difficulty affects obstacles
// spawned afterwards.
func (g *Game) SetSettings(s config.Settings) {
	g.settings = s.Normalize()
	g.difficulty.SetPreset(g.cfg.Preset(g.settings.Difficulty))
	g.profile = g.cfg.Profile(g.settings.Effects)
	g.particles.SetDensity(g.settings.ParticleDensity)
}

// Settings returns the active settings.
func (g *Game) Settings() config.Settings {
	return g.settings
}

// Stats returns a copy of the cumulative statistics.
func (g *Game) Stats() Stats {
	return g.stats
}

// Unlocked returns a copy of the achievement flags, index-aligned with Achievements.
func (g *Game) Unlocked() []bool {
	out := make([]bool, len(g.unlocked))
	copy(out, g.unlocked)
	return out
}

// Phase returns the current phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.session.Score,
		Level: g.session.Level,
		Combo: g.session.Combo,
	}
}

// update runs one playing tick.
func (g *Game) update() {
	dt := g.dt()
	g.session.Elapsed += dt

	g.player.Update(dt, g.cfg.Arena.Height)
	if g.fx.Float64() < g.cfg.Player.TrailChance && g.profile.Trails {
		g.particles.Trail(g.player.X, g.player.Y, core.ColorNeonGreen, g.cfg.Player.TrailCount)
	}

	prevScore := g.session.Score
	g.session.Score += g.player.ScoreRate()
	g.updateLevel(prevScore)
	g.baseSpeed = g.difficulty.BaseSpeed(g.session.Score)

	spawned := g.spawner.Tick(g.baseSpeed)
	if spawned.Obstacle != nil {
		g.obstacles = append(g.obstacles, *spawned.Obstacle)
	}
	if spawned.PowerUp != nil {
		g.powerUps = append(g.powerUps, *spawned.PowerUp)
	}

	slow := 1.0
	if g.player.SlowMo.Active {
		slow = g.cfg.Obstacles.SlowMoFactor
	}
	for i := range g.obstacles {
		if passed, gap := g.obstacles[i].Update(slow, g.player.X); passed {
			g.obstaclePassed(g.obstacles[i], gap)
		}
	}
	for i := range g.powerUps {
		g.powerUps[i].Update(slow, g.session.Elapsed, g.cfg.PowerUps)
	}
	g.particles.Update()

	if !g.resolveCollisions() {
		return
	}

	g.prune()
	g.checkAchievements()
}

// updateLevel recomputes the level and celebrates each crossing once.
func (g *Game) updateLevel(prevScore int) {
	if !g.difficulty.LevelCrossed(prevScore, g.session.Score) {
		return
	}
	level := g.difficulty.Level(g.session.Score)
	g.session.Level = level
	g.particles.Burst(g.cfg.Arena.Width/2, g.cfg.Arena.Height/2, core.ColorGold, g.cfg.Progression.LevelBurst)
	g.shake(g.cfg.Progression.LevelShake)
	g.emit(LevelUpEvent{Level: level})
}

func (g *Game) obstaclePassed(o Obstacle, gap float64) {
	g.stats.ObstaclesDodged++
	if gap >= g.cfg.Obstacles.PerfectGap {
		g.session.Combo = 0
		return
	}
	g.session.Combo++
	if g.session.Combo > g.session.MaxCombo {
		g.session.MaxCombo = g.session.Combo
	}
	g.stats.PerfectDodges++
	g.particles.Burst(o.X, o.Y, core.ColorGold, g.cfg.Obstacles.PerfectBurst)
	g.emit(PerfectDodgeEvent{Combo: g.session.Combo, Gap: gap})
}

// resolveCollisions returns false if the run ended this tick.
func (g *Game) resolveCollisions() bool {
	box := g.player.Box()

	for i := 0; i < len(g.obstacles); {
		o := g.obstacles[i]
		if !box.Intersects(o.Box()) {
			i++
			continue
		}
		if !g.player.Shield.Active {
			g.endGame()
			return false
		}
		g.player.Shield.Clear()
		g.particles.Burst(o.X, o.Y, core.ColorNeonCyan, g.cfg.Feedback.ShieldBurst)
		g.obstacles = append(g.obstacles[:i], g.obstacles[i+1:]...)
		g.emit(ShieldBrokenEvent{})
	}

	for i := range g.powerUps {
		p := &g.powerUps[i]
		if p.Collected || !box.Intersects(p.Box()) {
			continue
		}
		if p.Collect(&g.player, g.cfg.PowerUps) {
			g.stats.PowerUpsCollected++
			g.particles.Burst(p.X, p.Y, p.Kind.Color(), g.cfg.PowerUps.CollectBurst)
			g.emit(PowerUpCollectedEvent{Kind: p.Kind})
		}
	}
	return true
}

func (g *Game) prune() {
	obstacles := g.obstacles[:0]
	for _, o := range g.obstacles {
		if !o.OffScreen() {
			obstacles = append(obstacles, o)
		}
	}
	g.obstacles = obstacles

	powerUps := g.powerUps[:0]
	for _, p := range g.powerUps {
		if !p.OffScreen() && !p.Collected {
			powerUps = append(powerUps, p)
		}
	}
	g.powerUps = powerUps

	g.particles.Prune()
}

func (g *Game) progress() Progress {
	return Progress{
		Score:             g.session.Score,
		MaxCombo:          g.session.MaxCombo,
		PowerUpsCollected: g.stats.PowerUpsCollected,
		PerfectDodges:     g.stats.PerfectDodges,
	}
}

func (g *Game) checkAchievements() {
	for _, a := range EvaluateAchievements(Achievements, g.unlocked, g.progress()) {
		g.popup = &a
		g.popupTicks = g.ticksFor(g.cfg.Feedback.PopupDuration())
		g.emit(AchievementUnlockedEvent{Achievement: a})
		g.logger.Info("achievement unlocked", "id", a.ID)
	}
}

func (g *Game) endGame() {
	g.phase = core.PhaseGameOver
	g.shake(g.cfg.Feedback.CrashShake)
	g.particles.Burst(g.player.X+g.player.Width/2, g.player.Y, core.ColorNeonRed, g.cfg.Feedback.CrashBurst)

	g.stats.TotalTimePlayed += int(g.session.Elapsed / time.Second)
	if g.session.Score > g.stats.HighScore {
		g.stats.HighScore = g.session.Score
		g.session.NewHighScore = true
	}
	g.persist()

	g.emit(GameOverEvent{
		Score:        g.session.Score,
		Level:        g.session.Level,
		MaxCombo:     g.session.MaxCombo,
		Duration:     g.session.Elapsed,
		Difficulty:   g.settings.Difficulty,
		NewHighScore: g.session.NewHighScore,
	})
	g.logger.Info("game over",
		"score", g.session.Score,
		"level", g.session.Level,
		"max_combo", g.session.MaxCombo,
		"high_score", g.stats.HighScore,
	)
}

func (g *Game) persist() {
	if g.saver == nil {
		return
	}
	if err := g.saver.SaveProgress(g.stats, g.Unlocked()); err != nil {
		g.logger.Warn("could not save progress", "error", err)
	}
}

// shake starts a screen shake if enabled in settings.
func (g *Game) shake(intensity float64) {
	if !g.settings.ScreenShake {
		return
	}
	g.shakeX = (g.fx.Float64() - 0.5) * intensity
	g.shakeY = (g.fx.Float64() - 0.5) * intensity
	g.shakeTicks = g.ticksFor(g.cfg.Feedback.ShakeDuration())
}

// updateCosmetics counts down shake and popup timers.
func (g *Game) updateCosmetics() {
	if g.shakeTicks > 0 {
		g.shakeTicks--
		if g.shakeTicks == 0 {
			g.shakeX, g.shakeY = 0, 0
		}
	}
	if g.popupTicks > 0 {
		g.popupTicks--
		if g.popupTicks == 0 {
			g.popup = nil
		}
	}
}
