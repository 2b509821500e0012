// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// views can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// Key builds a key message from its string form as reported by
// tea.KeyMsg.String, for example "enter", "alt+enter", "ctrl+s", " " or "q".
// Anything that is not a named key is sent as typed runes.
func Key(s string) tea.KeyMsg {
	alt := false
	if name, ok := strings.CutPrefix(s, "alt+"); ok && name != "" {
		alt = true
		s = name
	}

	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}, Alt: alt}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter, Alt: alt}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc, Alt: alt}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab, Alt: alt}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab, Alt: alt}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp, Alt: alt}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown, Alt: alt}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft, Alt: alt}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight, Alt: alt}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC, Alt: alt}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS, Alt: alt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: alt}
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
