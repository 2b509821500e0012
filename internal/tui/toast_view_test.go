package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/choir/internal/core/notify"
)

func TestToastView_View_empty(t *testing.T) {
	v := NewToastView(NewToastController(0))
	assert.Empty(t, v.View())
}

func TestToastView_View_levels(t *testing.T) {
	tests := []struct {
		level notify.Level
		icon  string
	}{
		{notify.LevelInfo, "✓"},
		{notify.LevelWarning, "!"},
		{notify.LevelError, "✗"},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			c := NewToastController(0)
			c.Push(notify.Notification{Level: tt.level, Message: "message text"})

			out := ansi.Strip(NewToastView(c).View())
			assert.Contains(t, out, tt.icon+" message text")
		})
	}
}

func TestToastView_View_newest_last(t *testing.T) {
	c := NewToastController(0)
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "older"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "newer"})

	out := ansi.Strip(NewToastView(c).View())
	assert.Less(t, strings.Index(out, "older"), strings.Index(out, "newer"))
}

func TestToastView_Overlay(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)

	t.Run("no toasts keeps background", func(t *testing.T) {
		v := NewToastView(NewToastController(0))
		assert.Equal(t, bg, v.Overlay(bg, 80, 24))
	})

	t.Run("toast lands in the lower right", func(t *testing.T) {
		c := NewToastController(0)
		c.Push(notify.Notification{Level: notify.LevelInfo, Message: "saved"})

		lines := strings.Split(ansi.Strip(NewToastView(c).Overlay(bg, 80, 24)), "\n")
		require.Len(t, lines, 24)

		assert.Equal(t, strings.Repeat(".", 80), lines[0])
		assert.NotContains(t, lines[0], "saved")

		found := -1
		for i, line := range lines {
			if strings.Contains(line, "saved") {
				found = i
			}
		}
		require.GreaterOrEqual(t, found, 0)
		assert.Greater(t, found, 12)
		assert.Greater(t, strings.Index(lines[found], "saved"), 30)
		assert.Equal(t, 80, ansi.StringWidth(lines[found]))
	})
}
