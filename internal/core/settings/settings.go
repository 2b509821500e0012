// Package settings defines the language model and reviewer persona
// selection. The values are inert: nothing is sent anywhere.
package settings

import (
	"fmt"
	"slices"
)

// Option is a selectable value with a display label.
type Option struct {
	Value string
	Label string
}

// Persona is a reviewer preset. Custom has no fixed prompt.
type Persona struct {
	Value  string
	Label  string
	Prompt string
}

// PersonaCustom leaves the prompt under user control.
const PersonaCustom = "custom"

// Models lists the selectable language models. The first entry is the
// default.
var Models = []Option{
	{Value: "gpt-4o", Label: "gpt-4o"},
	{Value: "claude-3.5-sonnet", Label: "claude-3.5-sonnet"},
	{Value: "o1", Label: "o1"},
}

// Personas lists the reviewer presets. The first entry is the default.
var Personas = []Persona{
	{
		Value:  "academic",
		Label:  "Academic Reviewer",
		Prompt: "You are an academic reviewer with expertise in HCI and AI. Review the content for academic rigor, technical accuracy, methodology, theoretical framework, and provide constructive feedback for strengthening academic arguments.",
	},
	{
		Value:  "technical",
		Label:  "Technical Expert",
		Prompt: "You are a technical expert focusing on system architecture and implementation details. Review the content for technical accuracy and implementation feasibility.",
	},
	{
		Value:  "general",
		Label:  "General Editor",
		Prompt: "You are a professional editor focusing on clarity, coherence, and overall readability of the content.",
	},
	{
		Value: PersonaCustom,
		Label: "Custom",
	},
}

// Selection is the current settings form state.
type Selection struct {
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key,omitempty"`
	Persona string `yaml:"persona"`
	Prompt  string `yaml:"prompt,omitempty"`
}

// Defaults returns the first model and persona with the persona's prompt.
func Defaults() Selection {
	return Selection{
		Model:   Models[0].Value,
		Persona: Personas[0].Value,
		Prompt:  Personas[0].Prompt,
	}
}

// SelectPersona switches persona. Presets overwrite Prompt with their fixed
// text; custom keeps whatever prompt is already there.
func (s *Selection) SelectPersona(value string) {
	s.Persona = value
	if value == PersonaCustom {
		return
	}
	if p, ok := LookupPersona(value); ok {
		s.Prompt = p.Prompt
	}
}

// Validate checks that the model and persona are known values.
func (s Selection) Validate() error {
	if _, ok := LookupModel(s.Model); !ok {
		return fmt.Errorf("unknown model %q, available: %v", s.Model, ModelValues())
	}
	if _, ok := LookupPersona(s.Persona); !ok {
		return fmt.Errorf("unknown persona %q, available: %v", s.Persona, PersonaValues())
	}
	return nil
}

// MaskedAPIKey returns the key with all but the last four characters hidden.
func (s Selection) MaskedAPIKey() string {
	if s.APIKey == "" {
		return ""
	}
	runes := []rune(s.APIKey)
	if len(runes) <= 4 {
		return "****"
	}
	return "****" + string(runes[len(runes)-4:])
}

// LookupModel finds a model option by value.
func LookupModel(value string) (Option, bool) {
	i := slices.IndexFunc(Models, func(o Option) bool { return o.Value == value })
	if i < 0 {
		return Option{}, false
	}
	return Models[i], true
}

// LookupPersona finds a persona by value.
func LookupPersona(value string) (Persona, bool) {
	i := slices.IndexFunc(Personas, func(p Persona) bool { return p.Value == value })
	if i < 0 {
		return Persona{}, false
	}
	return Personas[i], true
}

// ModelValues returns the model values in display order.
func ModelValues() []string {
	out := make([]string, len(Models))
	for i, m := range Models {
		out[i] = m.Value
	}
	return out
}

// PersonaValues returns the persona values in display order.
func PersonaValues() []string {
	out := make([]string, len(Personas))
	for i, p := range Personas {
		out[i] = p.Value
	}
	return out
}
