package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-runner/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space flips", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlip},
		{"up flips", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlip},
		{"w flips", runes("w"), core.ActionFlip},
		{"p pauses", runes("p"), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r restarts", runes("r"), core.ActionRestart},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"m opens menu", runes("m"), core.ActionMenu},
		{"q quits", runes("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key", runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			got := keys.MapKeyToFrame(tt.msg, &frame)
			if got != tt.want {
				t.Errorf("MapKeyToFrame() = %v, expected %v", got, tt.want)
			}
			if tt.want != core.ActionNone && !frame.Has(tt.want) {
				t.Errorf("frame missing action %v", tt.want)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	tests := []struct {
		name   string
		action tea.MouseAction
		want   bool
	}{
		{"press flips", tea.MouseActionPress, true},
		{"release ignored", tea.MouseActionRelease, false},
		{"motion ignored", tea.MouseActionMotion, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			msg := tea.MouseMsg{Action: tt.action, Button: tea.MouseButtonLeft}
			if got := MapMouseToFrame(msg, &frame); got != tt.want {
				t.Errorf("MapMouseToFrame() = %v, expected %v", got, tt.want)
			}
			if frame.Has(core.ActionFlip) != tt.want {
				t.Errorf("flip set = %v, expected %v", frame.Has(core.ActionFlip), tt.want)
			}
		})
	}
}
