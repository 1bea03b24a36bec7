package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
)

// menuItem is an entry of the main menu.
type menuItem struct {
	Title  string
	Target screenID
}

var menuItems = []menuItem{
	{Title: "Play", Target: screenGame},
	{Title: "Settings", Target: screenSettings},
	{Title: "Statistics", Target: screenStats},
	{Title: "Achievements", Target: screenAchievements},
	{Title: "How to Play", Target: screenHelp},
	{Title: "Quit", Target: screenQuit},
}

const logo = `█▄ █ █▀▀ █▀█ █▄ █   █▀█ █ █ █▄ █ █▄ █ █▀▀ █▀█
█ ▀█ ██▄ █▄█ █ ▀█   █▀▄ █▄█ █ ▀█ █ ▀█ ██▄ █▀▄`

// handleMenuKey processes keyboard input for the main menu.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.menuKeys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}

	case key.Matches(msg, m.menuKeys.Down):
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}

	case key.Matches(msg, m.menuKeys.Select):
		target := menuItems[m.menuCursor].Target
		if target == screenQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.open(target)
	}
	return m, nil
}

// open switches to a screen from the main menu.
func (m *Model) open(target screenID) {
	if target == screenGame {
		m.startGame()
		return
	}
	m.current = target
	m.settingsCursor = 0
	m.confirmReset = false
	m.rebuildTables()
}

// handleInfoKey handles read-only screens.
func (m Model) handleInfoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.menuKeys.Back), key.Matches(msg, m.menuKeys.Select):
		m.enterMenu()
		return m, nil
	}

	var cmd tea.Cmd
	if m.current == screenAchievements {
		m.achTable, cmd = m.achTable.Update(msg)
	}
	return m, cmd
}

// viewMenu renders the title screen.
func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("flip gravity, dodge everything"))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuCursor {
			b.WriteString(selectedStyle.Render("> " + item.Title))
		} else {
			b.WriteString("  " + item.Title)
		}
		b.WriteString("\n")
	}

	stats := m.game.Stats()
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("High score: %d   Games: %d   Difficulty: %s",
		stats.HighScore, stats.GamesPlayed, m.settings.Difficulty)))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.menuKeys)))

	return place(m.width, m.height, lipgloss.JoinVertical(lipgloss.Center, b.String()))
}

// viewHelp renders the how-to-play screen.
func (m Model) viewHelp() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("HOW TO PLAY"))
	b.WriteString("\n\n")
	b.WriteString("Your runner sticks to the floor or the ceiling.\n")
	b.WriteString("Flip gravity to dodge the obstacles rushing in.\n")
	b.WriteString("Close calls build your combo and score bonus points.\n\n")

	b.WriteString(subtitleStyle.Render("Power-ups"))
	b.WriteString("\n")
	b.WriteString(colorStyles[runner.PowerUpShield.Color()].Render("◆ Shield") + "       absorbs one hit\n")
	b.WriteString(colorStyles[runner.PowerUpSlowMo.Color()].Render("◆ Slow-mo") + "      slows obstacles down\n")
	b.WriteString(colorStyles[runner.PowerUpMultiplier.Color()].Render("◆ Multiplier") + "   doubles points\n\n")

	b.WriteString(subtitleStyle.Render("Controls"))
	b.WriteString("\n")
	full := m.help
	full.ShowAll = true
	b.WriteString(full.View(m.gameKeys))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("esc: back"))

	return place(m.width, m.height, panelStyle.Render(b.String()))
}
