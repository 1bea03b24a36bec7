package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
)

// Scoreboard layout constants
const (
	maxRuns        = 10 // Runs shown on the stats screen
	minTableHeight = 3
	wideLayout     = 90 // Width at which stats and runs sit side by side
)

// newTable creates a table with the shared look.
func newTable(columns []table.Column, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(focused),
		table.WithHeight(max(minTableHeight, height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dim).
		BorderBottom(true).
		Bold(true).
		Foreground(neonCyan)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	if !focused {
		s.Selected = s.Cell
	}
	t.SetStyles(s)
	return t
}

// rebuildTables refreshes the stats, runs and achievement tables.
func (m *Model) rebuildTables() {
	rowsLeft := m.height - 12

	stats := m.game.Stats()
	m.statsTable = newTable([]table.Column{
		{Title: "Statistic", Width: 20},
		{Title: "Value", Width: 12},
	}, 7, false)
	m.statsTable.SetRows(statRows(stats))

	m.runsTable = newTable([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Lvl", Width: 4},
		{Title: "Combo", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Mode", Width: 7},
		{Title: "Date", Width: 13},
	}, min(rowsLeft, maxRuns), true)
	m.runsTable.SetRows(m.runRows())

	m.achTable = newTable([]table.Column{
		{Title: " ", Width: 2},
		{Title: "Achievement", Width: 18},
		{Title: "Goal", Width: 30},
	}, min(rowsLeft, len(runner.Achievements)), true)
	m.achTable.SetRows(achievementRows(m.game.Unlocked()))
}

func statRows(st runner.Stats) []table.Row {
	return []table.Row{
		{"High score", fmt.Sprintf("%d", st.HighScore)},
		{"Games played", fmt.Sprintf("%d", st.GamesPlayed)},
		{"Time played", formatDuration(st.TimePlayed())},
		{"Obstacles dodged", fmt.Sprintf("%d", st.ObstaclesDodged)},
		{"Perfect dodges", fmt.Sprintf("%d", st.PerfectDodges)},
		{"Power-ups", fmt.Sprintf("%d", st.PowerUpsCollected)},
	}
}

func (m *Model) runRows() []table.Row {
	if m.opts.Runs == nil {
		return nil
	}
	runs, err := m.opts.Runs.TopRuns(maxRuns)
	if err != nil {
		m.logger.Warn("could not load runs", "error", err)
		return nil
	}
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.MaxCombo),
			formatDuration(r.Duration),
			r.Difficulty,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

func achievementRows(unlocked []bool) []table.Row {
	rows := make([]table.Row, len(runner.Achievements))
	for i, a := range runner.Achievements {
		mark := "·"
		if i < len(unlocked) && unlocked[i] {
			mark = "★"
		}
		rows[i] = table.Row{mark, a.Name, a.Description}
	}
	return rows
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	mins := int(d/time.Minute) % 60
	secs := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, mins)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// handleStatsKey scrolls the runs table and handles the reset prompt.
func (m Model) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmReset {
		switch msg.String() {
		case "y", "Y":
			m.game.ResetStats()
			m.logger.Info("statistics reset")
			m.confirmReset = false
			m.rebuildTables()
		default:
			m.confirmReset = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.menuKeys.Back):
		m.enterMenu()
		return m, nil
	case key.Matches(msg, m.menuKeys.Reset):
		m.confirmReset = true
		return m, nil
	}

	var cmd tea.Cmd
	m.runsTable, cmd = m.runsTable.Update(msg)
	return m, cmd
}

// viewStats renders cumulative statistics next to the best runs.
func (m Model) viewStats() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("STATISTICS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1)

	statsBox := tableStyle.Render(m.statsTable.View())
	runsBox := tableStyle.Render(subtitleStyle.Render("Best runs") + "\n" + m.renderRuns())
	if m.width >= wideLayout {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, statsBox, "  ", runsBox))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, statsBox, runsBox))
	}
	b.WriteString("\n\n")

	if m.confirmReset {
		b.WriteString(warnStyle.Render("Reset all statistics and achievements? (y/n)"))
	} else {
		b.WriteString(mutedStyle.Render(m.help.View(statsHelp{m.menuKeys})))
	}
	return b.String()
}

func (m Model) renderRuns() string {
	if len(m.runsTable.Rows()) == 0 {
		return mutedStyle.Render("No runs yet. Go play!")
	}
	return m.runsTable.View()
}

// viewAchievements renders the achievement list.
func (m Model) viewAchievements() string {
	var b strings.Builder

	unlocked := 0
	for _, u := range m.game.Unlocked() {
		if u {
			unlocked++
		}
	}

	b.WriteString(titleStyle.Render("ACHIEVEMENTS"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d / %d unlocked", unlocked, len(runner.Achievements))))
	b.WriteString("\n\n")
	b.WriteString(m.achTable.View())
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("esc: back"))

	return place(m.width, m.height, panelStyle.Render(b.String()))
}

// statsHelp narrows the menu bindings to the ones the stats screen uses.
type statsHelp struct {
	keys MenuKeyMap
}

func (h statsHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Reset, h.keys.Back, h.keys.Quit}
}

func (h statsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
