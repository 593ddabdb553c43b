package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"w", runes("w"), core.ActionThrust, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"a", runes("a"), core.ActionRotateLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{"d", runes("d"), core.ActionRotateRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, false},
		{"space", space, core.ActionFire, false},
		{"enter", enter, core.ActionConfirm, false},
		{"p", runes("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"r", runes("r"), core.ActionRestart, false},
		{"q", runes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x", runes("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}

	if !km.IsMute(runes("m")) || km.IsMute(runes("n")) {
		t.Error("IsMute should match only m")
	}
	if !km.IsHelp(runes("?")) {
		t.Error("IsHelp should match ?")
	}
}

func TestHeldActions(t *testing.T) {
	tests := []struct {
		action   core.Action
		held     bool
		opposite core.Action
	}{
		{core.ActionThrust, true, core.ActionNone},
		{core.ActionRotateLeft, true, core.ActionRotateRight},
		{core.ActionRotateRight, true, core.ActionRotateLeft},
		{core.ActionFire, false, core.ActionNone},
		{core.ActionPause, false, core.ActionNone},
	}
	for _, tc := range tests {
		if got := isHeld(tc.action); got != tc.held {
			t.Errorf("isHeld(%v) = %v, expected %v", tc.action, got, tc.held)
		}
		if got := opposite(tc.action); got != tc.opposite {
			t.Errorf("opposite(%v) = %v, expected %v", tc.action, got, tc.opposite)
		}
	}
}
