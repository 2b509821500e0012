package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/choir/internal/choir"
	"github.com/colonyops/choir/internal/core/styles"
)

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.Placeholder = "Type or paste the document..."
	return ta
}

// renderDocument draws the read-only text with the current sentence
// highlighted, scrolled so the highlight stays in view.
func renderDocument(s choir.Snapshot, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	wrap := lipgloss.NewStyle().Width(width)
	text := s.Text
	top := 0
	if s.Highlighted {
		text = s.Text[:s.Highlight.Start] +
			styles.HighlightStyle.Render(s.Text[s.Highlight.Start:s.Highlight.End]) +
			s.Text[s.Highlight.End:]

		line := lipgloss.Height(wrap.Render(s.Text[:s.Highlight.Start])) - 1
		top = max(line-height/2, 0)
	}

	lines := strings.Split(wrap.Render(text), "\n")
	top = min(top, max(len(lines)-height, 0))
	end := min(top+height, len(lines))
	return strings.Join(lines[top:end], "\n")
}
