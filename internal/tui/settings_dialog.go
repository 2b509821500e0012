package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/choir/internal/core/settings"
	"github.com/colonyops/choir/internal/core/styles"
	"github.com/colonyops/choir/internal/tui/components/form"
)

const (
	fieldModel   = "model"
	fieldAPIKey  = "api_key"
	fieldPersona = "persona"
	fieldPrompt  = "prompt"

	settingsDialogWidth = 64
	promptMaxLength     = 4000
)

// SettingsDialog edits a draft of the saved settings selection.
type SettingsDialog struct {
	dialog  *form.Dialog
	prompt  *form.TextAreaField
	persona string
}

// NewSettingsDialog builds the form prefilled with draft.
func NewSettingsDialog(draft settings.Selection) *SettingsDialog {
	models := make([]form.SelectOption, 0, len(settings.Models))
	for _, m := range settings.Models {
		models = append(models, form.SelectOption{Value: m.Value, Label: m.Label})
	}

	personas := make([]form.SelectOption, 0, len(settings.Personas))
	for _, p := range settings.Personas {
		personas = append(personas, form.SelectOption{Value: p.Value, Label: p.Label})
	}

	prompt := form.NewTextAreaField("System prompt", "Describe how the reviewer should respond", draft.Prompt).
		WithValidation(form.FieldValidation{MaxLength: promptMaxLength})

	fields := []form.Field{
		form.NewSelectFormField("Model", models, draft.Model),
		form.NewTextField("API key", "sk-...", draft.APIKey).Masked(),
		form.NewSelectFormField("Reviewer persona", personas, draft.Persona),
		prompt,
	}

	return &SettingsDialog{
		dialog:  form.NewDialog("Settings", fields, []string{fieldModel, fieldAPIKey, fieldPersona, fieldPrompt}),
		prompt:  prompt,
		persona: draft.Persona,
	}
}

// Update forwards input to the form. Choosing a preset persona replaces the
// prompt with the preset text.
func (d *SettingsDialog) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.dialog, cmd = d.dialog.Update(msg)

	persona := d.dialog.Field(fieldPersona).Value()
	if persona != d.persona {
		d.persona = persona
		if p, ok := settings.LookupPersona(persona); ok && p.Value != settings.PersonaCustom {
			d.prompt.SetValue(p.Prompt)
		}
	}

	return cmd
}

// Selection returns the form values as a settings selection.
func (d *SettingsDialog) Selection() settings.Selection {
	values := d.dialog.FormValues()
	return settings.Selection{
		Model:   values[fieldModel],
		APIKey:  values[fieldAPIKey],
		Persona: values[fieldPersona],
		Prompt:  values[fieldPrompt],
	}
}

// Submitted reports whether the user saved the form.
func (d *SettingsDialog) Submitted() bool { return d.dialog.Submitted() }

// Cancelled reports whether the user dismissed the form.
func (d *SettingsDialog) Cancelled() bool { return d.dialog.Cancelled() }

// View renders the dialog box.
func (d *SettingsDialog) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(d.dialog.Title),
		"",
		d.dialog.View(),
	)
	return styles.ModalStyle.Width(settingsDialogWidth).Render(content)
}

// Overlay renders the dialog centered over the background.
func (d *SettingsDialog) Overlay(background string, width, height int) string {
	return overlayCenter(background, d.View(), width, height)
}
