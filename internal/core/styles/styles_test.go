package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_sorted(t *testing.T) {
	names := ThemeNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, DefaultTheme)
}

func TestSetThemeByName(t *testing.T) {
	t.Cleanup(func() { SetThemeByName(DefaultTheme) })

	require.True(t, SetThemeByName("gruvbox"))
	gruvbox, _ := GetPalette("gruvbox")
	assert.Equal(t, gruvbox, CurrentPalette)
	assert.Equal(t, gruvbox.Primary, ColorPrimary)

	assert.False(t, SetThemeByName("neon"))
	assert.Equal(t, gruvbox, CurrentPalette, "unknown theme keeps current")
}

func TestGlamourStyle_uses_palette(t *testing.T) {
	t.Cleanup(func() { SetThemeByName(DefaultTheme) })
	require.True(t, SetThemeByName("catppuccin"))

	cfg := GlamourStyle()

	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, "#cdd6f4", *cfg.Document.Color)
	require.NotNil(t, cfg.H2.Color)
	assert.Equal(t, "#89b4fa", *cfg.H2.Color)
}

func TestColorHexPtr(t *testing.T) {
	assert.Nil(t, colorHexPtr(""))
	assert.Nil(t, colorHexPtr("238"), "ansi index is not hex")

	hex := colorHexPtr("#ABCDEF")
	require.NotNil(t, hex)
	assert.Equal(t, "#abcdef", *hex)
}

func TestFormTheme(t *testing.T) {
	assert.NotNil(t, FormTheme())
}
