// Package form provides the focusable fields and dialog used by modal forms.
package form

import tea "github.com/charmbracelet/bubbletea"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	Label() string
	// Validate returns an error message, or "" when the value is acceptable.
	Validate() string
}
