package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestModal_NewDefaults(t *testing.T) {
	m := NewModal("Title", "Are you sure?")
	assert.False(t, m.ConfirmSelected()) // defaults to cancel
	assert.Equal(t, "Title", m.title)
	assert.Equal(t, "Are you sure?", m.message)
}

func TestModal_ToggleSelection(t *testing.T) {
	m := NewModal("", "")
	assert.False(t, m.ConfirmSelected())

	m.ToggleSelection()
	assert.True(t, m.ConfirmSelected())

	m.ToggleSelection()
	assert.False(t, m.ConfirmSelected())
}

func TestModal_View(t *testing.T) {
	out := ansi.Strip(NewModal("Reset playback", "Clear everything?").View())
	assert.Contains(t, out, "Reset playback")
	assert.Contains(t, out, "Clear everything?")
	assert.Contains(t, out, "Confirm")
	assert.Contains(t, out, "Cancel")
}
