package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/choir/internal/core/styles"
)

// TextField is a single-line text input form field.
type TextField struct {
	input      textinput.Model
	label      string
	focused    bool
	validation FieldValidation
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder, defaultVal string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 40
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	return &TextField{
		input: ti,
		label: label,
	}
}

// Masked hides the typed characters.
func (f *TextField) Masked() *TextField {
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

// WithValidation attaches validation rules checked on submit.
func (f *TextField) WithValidation(v FieldValidation) *TextField {
	f.validation = v
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
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

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Focused() bool    { return f.focused }
func (f *TextField) Value() string    { return f.input.Value() }
func (f *TextField) Label() string    { return f.label }
func (f *TextField) Validate() string { return f.validation.ValidateText(f.input.Value()) }
