package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/choir/internal/core/config"
	"github.com/colonyops/choir/internal/printer"
)

func TestCollectErrors(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, collectErrors(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		got := collectErrors(errors.New("data directory cannot be empty"))
		assert.Equal(t, []validationError{{Message: "data directory cannot be empty"}}, got)
	})

	t.Run("field errors", func(t *testing.T) {
		var b criterio.FieldErrorsBuilder
		b = b.Append("content.sections", errors.New("document has 9 sentences but 8 sections"))
		b = b.Append("content.sections_pattern", errors.New("invalid glob"))

		got := collectErrors(b.ToError())
		require.Len(t, got, 2)
		assert.Equal(t, "content.sections", got[0].Field)
		assert.Equal(t, "document has 9 sentences but 8 sections", got[0].Message)
		assert.Equal(t, "content.sections_pattern", got[1].Field)
	})
}

func TestConfigValidateCmd_outputText(t *testing.T) {
	cmd := NewConfigValidateCmd(&Flags{})

	t.Run("valid", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmd.outputText(printer.New(&buf), nil, nil)
		require.NoError(t, err)
		assert.Contains(t, ansi.Strip(buf.String()), "✓ Configuration is valid")
	})

	t.Run("errors and warnings", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmd.outputText(printer.New(&buf),
			[]validationError{{Field: "content.sections", Message: "mismatch"}},
			[]config.ValidationWarning{{Category: "Settings", Item: "api_key", Message: "no API key"}},
		)
		require.Error(t, err)

		out := ansi.Strip(buf.String())
		assert.Contains(t, out, "! Settings: no API key")
		assert.Contains(t, out, "Item: api_key")
		assert.Contains(t, out, "✗ content.sections: mismatch")
		assert.Contains(t, out, "1 error(s) found")
	})
}
