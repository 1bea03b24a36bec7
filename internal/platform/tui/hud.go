package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/games/runner"
)

const (
	buffBarWidth  = 12
	popupRow      = 2
	popupSlideSec = 0.4
)

// hud draws what the runner leaves to the platform: buff timers under the
// arena and the sliding achievement banner.
type hud struct {
	shield progress.Model
	slowMo progress.Model
	mult   progress.Model

	popupID    string
	popupTween *gween.Tween
	popupX     float32
}

func newHUD() hud {
	bar := func(color string) progress.Model {
		return progress.New(
			progress.WithSolidFill(color),
			progress.WithWidth(buffBarWidth),
			progress.WithoutPercentage(),
		)
	}
	return hud{
		shield: bar(string(neonCyan)),
		slowMo: bar(string(purple)),
		mult:   bar(string(gold)),
	}
}

// popupText is the banner shown for an unlocked achievement.
func popupText(a *runner.Achievement) string {
	return fmt.Sprintf(" ★ ACHIEVEMENT: %s - %s ", a.Name, a.Description)
}

// update advances the banner animation by dt.
func (h *hud) update(snap runner.Snapshot, screenW int, dt time.Duration) {
	if snap.Popup == nil {
		h.popupID, h.popupTween = "", nil
		return
	}
	if snap.Popup.ID != h.popupID {
		h.popupID = snap.Popup.ID
		target := float32(max(0, (screenW-len([]rune(popupText(snap.Popup))))/2))
		h.popupTween = gween.New(float32(screenW), target, popupSlideSec, ease.OutCubic)
		h.popupX = float32(screenW)
	}
	if h.popupTween != nil {
		h.popupX, _ = h.popupTween.Update(float32(dt.Seconds()))
	}
}

// drawPopup draws the banner onto the arena.
func (h *hud) drawPopup(dst *core.Screen, snap runner.Snapshot) {
	if snap.Popup == nil || h.popupTween == nil {
		return
	}
	dst.DrawTextColor(int(h.popupX), popupRow, popupText(snap.Popup), core.ColorGold)
}

// statusLine renders active buffs and the best score.
func (h *hud) statusLine(snap runner.Snapshot, cfg config.PowerUpConfig) string {
	var parts []string

	p := snap.Player
	if p.Shield.Active {
		parts = append(parts, "SHIELD "+h.shield.ViewAs(fraction(p.Shield.Remaining, cfg.ShieldDuration())))
	}
	if p.SlowMo.Active {
		parts = append(parts, "SLOW-MO "+h.slowMo.ViewAs(fraction(p.SlowMo.Remaining, cfg.SlowMoDuration())))
	}
	if p.Multiplier > 1 {
		label := fmt.Sprintf("%gx ", p.Multiplier)
		parts = append(parts, label+h.mult.ViewAs(fraction(p.MultiplierTime, cfg.MultiplierDuration())))
	}

	best := mutedStyle.Render(fmt.Sprintf("BEST: %d", snap.Stats.HighScore))
	if len(parts) == 0 {
		return best
	}
	return strings.Join(parts, "   ") + "   " + best
}

func fraction(remaining, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return core.ClampF(float64(remaining)/float64(total), 0, 1)
}
