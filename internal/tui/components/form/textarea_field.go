package form

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/choir/internal/core/styles"
)

// TextAreaField is a multi-line text input form field.
type TextAreaField struct {
	input      textarea.Model
	label      string
	focused    bool
	validation FieldValidation
}

// NewTextAreaField creates a new multi-line text input field.
func NewTextAreaField(label, placeholder, defaultVal string) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(5)
	ta.SetWidth(50)

	if defaultVal != "" {
		ta.SetValue(defaultVal)
	}

	return &TextAreaField{
		input: ta,
		label: label,
	}
}

// WithValidation attaches validation rules checked on submit.
func (f *TextAreaField) WithValidation(v FieldValidation) *TextAreaField {
	f.validation = v
	return f
}

// SetValue replaces the field content.
func (f *TextAreaField) SetValue(s string) {
	f.input.SetValue(s)
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextAreaField) View() string {
	titleStyle := styles.FormTitleBlurredStyle
	borderStyle := styles.FormFieldStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
		borderStyle = styles.FormFieldFocusedStyle
	}

	parts := []string{titleStyle.Render(f.label), f.input.View()}
	if msg := f.Validate(); msg != "" {
		parts = append(parts, styles.FormErrorStyle.Render(msg))
	}
	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) Focused() bool    { return f.focused }
func (f *TextAreaField) Value() string    { return f.input.Value() }
func (f *TextAreaField) Label() string    { return f.label }
func (f *TextAreaField) Validate() string { return f.validation.ValidateText(f.input.Value()) }
