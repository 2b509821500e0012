package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlay draws fg over bg with its top-left corner at column x, row y.
// Cells of bg outside fg are kept, including their styling.
func overlay(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	fgWidth := lipgloss.Width(fg)

	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	for i, line := range fgLines {
		row := y + i
		under := bgLines[row]

		left := ansi.Truncate(under, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		if w := ansi.StringWidth(line); w < fgWidth {
			line += strings.Repeat(" ", fgWidth-w)
		}
		right := ansi.TruncateLeft(under, x+fgWidth, "")

		bgLines[row] = left + line + "\x1b[0m" + right
	}

	return strings.Join(bgLines, "\n")
}

// overlayCenter draws fg centered over a width x height bg.
func overlayCenter(bg, fg string, width, height int) string {
	x := max((width-lipgloss.Width(fg))/2, 0)
	y := max((height-lipgloss.Height(fg))/2, 0)
	return overlay(bg, fg, x, y)
}
