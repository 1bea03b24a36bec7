package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// Neon palette as ANSI 256-color codes.
var (
	neonGreen = lipgloss.Color("46")
	neonRed   = lipgloss.Color("197")
	neonCyan  = lipgloss.Color("51")
	purple    = lipgloss.Color("135")
	gold      = lipgloss.Color("220")
	dim       = lipgloss.Color("238")
	gray      = lipgloss.Color("245")
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorNeonGreen: lipgloss.NewStyle().Foreground(neonGreen).Bold(true),
	core.ColorNeonRed:   lipgloss.NewStyle().Foreground(neonRed).Bold(true),
	core.ColorNeonCyan:  lipgloss.NewStyle().Foreground(neonCyan),
	core.ColorPurple:    lipgloss.NewStyle().Foreground(purple),
	core.ColorGold:      lipgloss.NewStyle().Foreground(gold).Bold(true),
	core.ColorDim:       lipgloss.NewStyle().Foreground(dim),
	core.ColorGray:      lipgloss.NewStyle().Foreground(gray),
}

// Shared styles for the non-game screens.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(neonGreen)
	subtitleStyle = lipgloss.NewStyle().Foreground(neonCyan)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(gold)
	mutedStyle    = lipgloss.NewStyle().Foreground(gray)
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(neonRed)
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(neonCyan).
			Padding(1, 3)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// place centers a block in the terminal.
func place(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
