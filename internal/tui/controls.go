package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/choir/internal/choir"
	"github.com/colonyops/choir/internal/core/styles"
)

// playLabel names the action the play button performs next.
func playLabel(s choir.Snapshot) string {
	switch {
	case s.Running():
		return "Pause"
	case s.Completed():
		return "Restart"
	case s.Started:
		return "Resume"
	default:
		return "Play"
	}
}

func chatLabel(s choir.Snapshot) string {
	if s.ChatOpen {
		return "Close chat"
	}
	return "Chat"
}

func button(label string, active, enabled bool) string {
	switch {
	case !enabled:
		return styles.ButtonDisabledStyle.Render(label)
	case active:
		return styles.ButtonActiveStyle.Render(label)
	default:
		return styles.ButtonStyle.Render(label)
	}
}

// renderControls draws the control bar. Step back, chat and settings are
// unavailable while playback runs.
func renderControls(s choir.Snapshot, width int) string {
	idle := !s.Running()

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button("◀ Back", false, idle && s.Cursor >= 0),
		" ",
		button(playLabel(s), true, true),
		" ",
		button(chatLabel(s), s.ChatOpen, idle),
		" ",
		button("Settings", false, idle),
	)

	status := styles.StatusStyle.Render(progressText(s))
	gap := max(width-lipgloss.Width(buttons)-lipgloss.Width(status), 1)

	return buttons + strings.Repeat(" ", gap) + status
}

func progressText(s choir.Snapshot) string {
	total := s.Total
	return fmt.Sprintf("%s  %d/%d", s.Status, s.Cursor+1, total)
}
