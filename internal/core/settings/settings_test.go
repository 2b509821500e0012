package settings

import (
	"testing"

	"github.com/colonyops/choir/internal/core/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, "gpt-4o", s.Model)
	assert.Equal(t, "academic", s.Persona)
	assert.Equal(t, Personas[0].Prompt, s.Prompt)
	assert.Empty(t, s.APIKey)
	assert.NoError(t, s.Validate())
}

func TestSelection_SelectPersona(t *testing.T) {
	tests := []struct {
		name       string
		start      Selection
		persona    string
		wantPrompt string
	}{
		{
			name:       "preset overwrites edited custom prompt",
			start:      Selection{Model: "o1", Persona: PersonaCustom, Prompt: "my own careful prompt"},
			persona:    "technical",
			wantPrompt: Personas[1].Prompt,
		},
		{
			name:       "custom keeps current prompt",
			start:      Selection{Model: "o1", Persona: "general", Prompt: Personas[2].Prompt},
			persona:    PersonaCustom,
			wantPrompt: Personas[2].Prompt,
		},
		{
			name:       "preset to preset",
			start:      Defaults(),
			persona:    "general",
			wantPrompt: Personas[2].Prompt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.SelectPersona(tt.persona)

			assert.Equal(t, tt.persona, s.Persona)
			assert.Equal(t, tt.wantPrompt, s.Prompt)
		})
	}
}

func TestSelection_Validate(t *testing.T) {
	s := Defaults()
	s.Model = "gpt-2"
	assert.ErrorContains(t, s.Validate(), "unknown model")

	s = Defaults()
	s.Persona = "pirate"
	assert.ErrorContains(t, s.Validate(), "unknown persona")

	s = Defaults()
	s.SelectPersona(PersonaCustom)
	s.Prompt = ""
	assert.NoError(t, s.Validate())
}

func TestSelection_MaskedAPIKey(t *testing.T) {
	assert.Equal(t, "", Selection{}.MaskedAPIKey())
	assert.Equal(t, "****", Selection{APIKey: "abc"}.MaskedAPIKey())
	assert.Equal(t, "****wxyz", Selection{APIKey: "sk-abcdwxyz"}.MaskedAPIKey())
}

func TestLookups(t *testing.T) {
	m, ok := LookupModel("claude-3.5-sonnet")
	require.True(t, ok)
	assert.Equal(t, "claude-3.5-sonnet", m.Label)

	_, ok = LookupModel("nope")
	assert.False(t, ok)

	p, ok := LookupPersona(PersonaCustom)
	require.True(t, ok)
	assert.Empty(t, p.Prompt)

	assert.Equal(t, []string{"gpt-4o", "claude-3.5-sonnet", "o1"}, ModelValues())
	assert.Equal(t, []string{"academic", "technical", "general", "custom"}, PersonaValues())
}

type recordingPublisher struct {
	published []notify.Notification
}

func (r *recordingPublisher) Publish(n notify.Notification) {
	r.published = append(r.published, n)
}

func TestManager_Save(t *testing.T) {
	pub := &recordingPublisher{}
	m := NewManager(Defaults(), pub)

	draft := m.Draft()
	draft.Model = "o1"
	draft.APIKey = "secret"
	draft.SelectPersona("general")

	assert.Equal(t, "gpt-4o", m.Current().Model, "draft edits are not visible before save")

	require.NoError(t, m.Save(draft))

	assert.Equal(t, draft, m.Current())
	require.Len(t, pub.published, 1)
	assert.Equal(t, SavedMessage, pub.published[0].Message)
	assert.Equal(t, notify.LevelInfo, pub.published[0].Level)
}

func TestManager_Save_invalid(t *testing.T) {
	pub := &recordingPublisher{}
	m := NewManager(Defaults(), pub)

	draft := m.Draft()
	draft.Model = "bogus"

	assert.Error(t, m.Save(draft))
	assert.Equal(t, Defaults(), m.Current())
	assert.Empty(t, pub.published)
}

func TestManager_nil_publisher(t *testing.T) {
	m := NewManager(Defaults(), nil)
	assert.NoError(t, m.Save(Defaults()))
}
