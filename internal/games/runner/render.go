package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// Visual characters for rendering
const (
	LaneChar          = '─'
	PlayerChar        = '█'
	ShieldChar        = '▓'
	GlowChar          = '░'
	FloorSpikeChar    = '▲'
	CeilingSpikeChar  = '▼'
	StarChar          = '·'
	BrightStarChar    = '•'
	ParticleHotChar   = '*'
	ParticleWarmChar  = '+'
	ParticleFadeChar  = '.'
	glowThreshold     = 30
	hudRow            = 0
	brightStarOpacity = 0.7
)

var powerUpChars = map[PowerUpKind]rune{
	PowerUpShield:     '◆',
	PowerUpSlowMo:     '◷',
	PowerUpMultiplier: '★',
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
	ox, oy int // shake offset in cells
}

func (g *Game) viewport(dst *core.Screen) viewport {
	v := viewport{
		sx: float64(dst.Width()) / g.cfg.Arena.Width,
		sy: float64(dst.Height()) / g.cfg.Arena.Height,
	}
	v.ox = int(math.Round(g.shakeX * v.sx))
	v.oy = int(math.Round(g.shakeY * v.sy))
	return v
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x*v.sx)) + v.ox, int(math.Floor(y*v.sy)) + v.oy
}

// cells returns the cell rectangle covered by a box, at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0, y0 := v.point(b.X, b.Y)
	x1 := int(math.Ceil(b.Right()*v.sx)) + v.ox
	y1 := int(math.Ceil(b.Bottom()*v.sy)) + v.oy
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.viewport(dst)

	g.drawStars(dst, v)
	g.drawLanes(dst, v)
	g.drawParticles(dst, v)

	for _, o := range g.obstacles {
		ch := FloorSpikeChar
		if o.Lane == LaneCeiling {
			ch = CeilingSpikeChar
		}
		dst.DrawRect(v.cells(o.Box()), ch, core.ColorNeonRed)
	}

	for _, p := range g.powerUps {
		cx, cy := p.Box().Center()
		x, y := v.point(cx, cy)
		dst.SetCell(x, y, powerUpChars[p.Kind], p.Kind.Color())
	}

	if g.phase != core.PhaseMenu {
		g.drawPlayer(dst, v)
	}

	switch g.phase {
	case core.PhaseMenu:
		g.drawCenteredMessage(dst, core.ColorNeonGreen,
			"N E O N   R U N N E R",
			"Press Enter to start")
	case core.PhasePlaying:
		g.drawHUD(dst)
	case core.PhasePaused:
		g.drawHUD(dst)
		g.drawCenteredMessage(dst, core.ColorNeonCyan,
			"PAUSED",
			"P/Esc resume  |  R restart  |  M menu")
	case core.PhaseGameOver:
		g.drawGameOver(dst)
	}
}

func (g *Game) drawStars(dst *core.Screen, v viewport) {
	for _, s := range g.stars.Stars() {
		x, y := v.point(s.X, s.Y)
		if s.Opacity >= brightStarOpacity {
			dst.SetCell(x, y, BrightStarChar, core.ColorWhite)
		} else {
			dst.SetCell(x, y, StarChar, core.ColorDim)
		}
	}
}

func (g *Game) drawLanes(dst *core.Screen, v viewport) {
	_, top := v.point(0, g.cfg.Obstacles.LaneOffset)
	_, bottom := v.point(0, g.cfg.Arena.Height-g.cfg.Obstacles.LaneOffset)
	dst.DrawHLine(0, top, dst.Width(), LaneChar, core.ColorNeonCyan)
	dst.DrawHLine(0, bottom, dst.Width(), LaneChar, core.ColorNeonCyan)
}

func (g *Game) drawParticles(dst *core.Screen, v viewport) {
	limit := g.profile.Particles
	for i, p := range g.particles.Particles() {
		if limit > 0 && i >= limit {
			break
		}
		if p.Dead() {
			continue
		}
		ch := ParticleFadeChar
		switch {
		case p.Life > 0.66:
			ch = ParticleHotChar
		case p.Life > 0.33:
			ch = ParticleWarmChar
		}
		x, y := v.point(p.X, p.Y)
		dst.SetCell(x, y, ch, p.Color)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	r := v.cells(g.player.Box())

	if g.profile.Glow >= glowThreshold {
		dst.DrawRect(core.NewRect(r.X-1, r.Y, r.W+2, r.H), GlowChar, core.ColorNeonGreen)
	}

	ch, color := PlayerChar, core.ColorNeonGreen
	if g.player.Shield.Active {
		ch, color = ShieldChar, core.ColorNeonCyan
	}
	dst.DrawRect(r, ch, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(2, hudRow, fmt.Sprintf("SCORE: %d", g.session.Score), core.ColorNeonGreen)
	dst.DrawTextColor(18, hudRow, fmt.Sprintf("LEVEL %d", g.session.Level), core.ColorNeonCyan)
	if g.session.Combo > 0 {
		dst.DrawTextCentered(hudRow, fmt.Sprintf("%dx COMBO!", g.session.Combo), core.ColorGold)
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("SCORE: %d", g.session.Score),
	}
	if g.session.NewHighScore {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	lines = append(lines,
		fmt.Sprintf("Level %d  |  Max Combo: %dx", g.session.Level, g.session.MaxCombo),
		"Space/R restart  |  M menu",
	)
	g.drawCenteredMessage(dst, core.ColorNeonRed, lines...)
}

// drawCenteredMessage draws a message box in the center of the screen.
// The first line is the title, drawn in titleColor.
func (g *Game) drawCenteredMessage(dst *core.Screen, titleColor core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), titleColor)

	for i, l := range lines {
		color := core.ColorWhite
		switch {
		case i == 0:
			color = titleColor
		case l == "NEW HIGH SCORE!":
			color = core.ColorGold
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, boxY+1+i*2, l, color)
	}
}
