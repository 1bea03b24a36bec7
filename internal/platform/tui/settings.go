package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-runner/internal/config"
)

// densityStep is how far left/right moves the particle density.
const densityStep = 5

type settingRow int

const (
	rowDifficulty settingRow = iota
	rowEffects
	rowDensity
	rowShake
	rowBack
)

var settingLabels = []string{"Difficulty", "Effects", "Particle density", "Screen shake", "Back"}

// handleSettingsKey cycles the setting under the cursor.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.menuKeys.Back):
		m.enterMenu()

	case key.Matches(msg, m.menuKeys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}

	case key.Matches(msg, m.menuKeys.Down):
		if m.settingsCursor < len(settingLabels)-1 {
			m.settingsCursor++
		}

	case key.Matches(msg, m.menuKeys.Left):
		m.applySettings(adjustSetting(m.settings, settingRow(m.settingsCursor), -1))

	case key.Matches(msg, m.menuKeys.Right):
		m.applySettings(adjustSetting(m.settings, settingRow(m.settingsCursor), 1))

	case key.Matches(msg, m.menuKeys.Select):
		if settingRow(m.settingsCursor) == rowBack {
			m.enterMenu()
			return m, nil
		}
		m.applySettings(adjustSetting(m.settings, settingRow(m.settingsCursor), 1))
	}
	return m, nil
}

// adjustSetting returns s with the given row moved one step in dir.
func adjustSetting(s config.Settings, row settingRow, dir int) config.Settings {
	switch row {
	case rowDifficulty:
		if dir < 0 {
			s.Difficulty = s.Difficulty.Prev()
		} else {
			s.Difficulty = s.Difficulty.Next()
		}
	case rowEffects:
		if dir < 0 {
			s.Effects = s.Effects.Prev()
		} else {
			s.Effects = s.Effects.Next()
		}
	case rowDensity:
		s.ParticleDensity += dir * densityStep
	case rowShake:
		s.ScreenShake = !s.ScreenShake
	}
	return s.Normalize()
}

// applySettings updates the game and persists the change.
func (m *Model) applySettings(s config.Settings) {
	if s == m.settings {
		return
	}
	m.settings = s
	m.game.SetSettings(s)
	if m.opts.Profile == nil {
		return
	}
	if err := m.opts.Profile.SaveSettings(s); err != nil {
		m.logger.Warn("could not save settings", "error", err)
	}
}

func settingValue(s config.Settings, row settingRow) string {
	switch row {
	case rowDifficulty:
		return strings.ToUpper(string(s.Difficulty))
	case rowEffects:
		return strings.ToUpper(string(s.Effects))
	case rowDensity:
		return fmt.Sprintf("%d%%", s.ParticleDensity)
	case rowShake:
		if s.ScreenShake {
			return "ON"
		}
		return "OFF"
	}
	return ""
}

// viewSettings renders the settings panel.
func (m Model) viewSettings() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SETTINGS"))
	b.WriteString("\n\n")

	for i, label := range settingLabels {
		row := settingRow(i)
		line := label
		if row != rowBack {
			line = fmt.Sprintf("%-18s < %s >", label, settingValue(m.settings, row))
		}
		if i == m.settingsCursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Difficulty applies to obstacles spawned from now on."))
	b.WriteString("\n\n")
	full := m.help
	full.ShowAll = true
	b.WriteString(mutedStyle.Render(full.View(m.menuKeys)))

	return place(m.width, m.height, panelStyle.Render(b.String()))
}
