package playback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevealer_Reveal(t *testing.T) {
	r := NewRevealer([]string{"S0", "S1", "S2"})

	tests := []struct {
		cursor int
		want   string
	}{
		{cursor: -5, want: ""},
		{cursor: -1, want: ""},
		{cursor: 0, want: "S0"},
		{cursor: 1, want: "S0\n\nS1"},
		{cursor: 2, want: "S0\n\nS1\n\nS2"},
		{cursor: 7, want: "S0\n\nS1\n\nS2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Reveal(tt.cursor), "cursor %d", tt.cursor)
	}
}

func TestRevealer_prefix_property(t *testing.T) {
	r := NewRevealer([]string{"# One\n\nbody", "* two", "## Three", "four"})

	prev := r.Reveal(-1)
	for c := 0; c < r.Len()+2; c++ {
		cur := r.Reveal(c)
		assert.True(t, strings.HasPrefix(cur, prev), "reveal(%d) extends reveal(%d)", c, c-1)
		prev = cur
	}
}

func TestRevealer_empty(t *testing.T) {
	r := NewRevealer(nil)

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, "", r.Reveal(3))
}

func TestRevealer_copies_sections(t *testing.T) {
	src := []string{"a", "b"}
	r := NewRevealer(src)
	src[0] = "changed"

	assert.Equal(t, "a", r.Reveal(0))

	out := r.Sections()
	out[1] = "changed"
	assert.Equal(t, "a\n\nb", r.Reveal(1))
}
