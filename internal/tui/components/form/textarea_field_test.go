package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestTextAreaField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextAreaField("Prompt", "enter text", "")
		assert.Equal(t, "Prompt", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextAreaField("Prompt", "", "hello world")
		assert.Equal(t, "hello world", f.Value())
	})

	t.Run("set value", func(t *testing.T) {
		f := NewTextAreaField("Prompt", "", "old")
		f.SetValue("new text")
		assert.Equal(t, "new text", f.Value())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextAreaField("Prompt", "", "")
		field, cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("max length", func(t *testing.T) {
		f := NewTextAreaField("Prompt", "", "abcdef").WithValidation(FieldValidation{MaxLength: 3})
		assert.Equal(t, "maximum 3 characters", f.Validate())
	})
}

func TestTextField(t *testing.T) {
	t.Run("typing when focused", func(t *testing.T) {
		f := NewTextField("Key", "", "")
		f.Focus()
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("sk")})
		assert.Equal(t, "sk", f.Value())
	})

	t.Run("masked input hides value", func(t *testing.T) {
		f := NewTextField("Key", "", "secret-key").Masked()
		assert.Equal(t, "secret-key", f.Value())
		assert.NotContains(t, f.View(), "secret-key")
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("Key", "", "")
		f.Focus()
		assert.True(t, f.Focused())
		f.Blur()
		assert.False(t, f.Focused())
	})
}

func TestSelectFormField(t *testing.T) {
	options := []SelectOption{
		{Value: "a", Label: "Alpha"},
		{Value: "b", Label: "Beta"},
		{Value: "c", Label: "Gamma"},
	}

	t.Run("default selection", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "b")
		assert.Equal(t, "b", f.Value())
		assert.Contains(t, f.View(), "Beta")
	})

	t.Run("unknown default selects first", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "zzz")
		assert.Equal(t, "a", f.Value())
	})

	t.Run("arrow keys move when focused", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "a")

		f.Update(tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, "a", f.Value(), "ignored while blurred")

		f.Focus()
		f.Update(tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, "b", f.Value())
		f.Update(tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, "a", f.Value())
	})
}

func TestFieldValidation(t *testing.T) {
	tests := []struct {
		name  string
		v     FieldValidation
		value string
		want  string
	}{
		{name: "required empty", v: FieldValidation{Required: true}, value: "", want: "required"},
		{name: "optional empty", v: FieldValidation{MaxLength: 2}, value: "", want: ""},
		{name: "too long", v: FieldValidation{MaxLength: 2}, value: "abc", want: "maximum 2 characters"},
		{name: "counts runes", v: FieldValidation{MaxLength: 2}, value: "éé", want: ""},
		{name: "ok", v: FieldValidation{Required: true, MaxLength: 5}, value: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.ValidateText(tt.value))
		})
	}
}
