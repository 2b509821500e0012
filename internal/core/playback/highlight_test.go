package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	text := "A. B. C."
	sentences := []string{"A. ", "B. ", "C."}

	tests := []struct {
		name   string
		cursor int
		want   Span
		ok     bool
	}{
		{name: "before start", cursor: -1},
		{name: "first", cursor: 0, want: Span{Start: 0, End: 2}, ok: true},
		{name: "middle", cursor: 1, want: Span{Start: 3, End: 5}, ok: true},
		{name: "last", cursor: 2, want: Span{Start: 6, End: 8}, ok: true},
		{name: "past end", cursor: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Locate(text, sentences, tt.cursor)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, sentences[tt.cursor][:got.Len()], text[got.Start:got.End])
			}
		})
	}
}

func TestLocate_duplicate_sentences_use_position(t *testing.T) {
	text := "Same. Same. Same."
	sentences := Segment(text)
	require.Len(t, sentences, 3)

	for i, wantStart := range []int{0, 6, 12} {
		got, ok := Locate(text, sentences, i)
		require.True(t, ok)
		assert.Equal(t, Span{Start: wantStart, End: wantStart + 5}, got)
	}
}

func TestLocate_leading_whitespace(t *testing.T) {
	text := "  Indented. Next."
	sentences := Segment(text)

	got, ok := Locate(text, sentences, 0)
	require.True(t, ok)
	assert.Equal(t, "Indented.", text[got.Start:got.End])
}

func TestLocate_search_miss_returns_none(t *testing.T) {
	text := "A. B. C."

	_, ok := Locate(text, []string{"A. ", "X. ", "C."}, 1)
	assert.False(t, ok, "sentence not in text")

	_, ok = Locate(text, []string{"A. B. C. and more", "A."}, 1)
	assert.False(t, ok, "offset hint beyond text")

	_, ok = Locate(text, []string{"A. ", "   ", "C."}, 1)
	assert.False(t, ok, "blank sentence")
}

func TestLocate_stale_sentences_never_wrong_span(t *testing.T) {
	sentences := Segment("First one. Second one.")
	text := "Second one."

	_, ok := Locate(text, sentences, 1)
	assert.False(t, ok)
}

func TestSentenceAt(t *testing.T) {
	sentences := []string{"A. ", "B. "}

	s, ok := SentenceAt(sentences, 1)
	assert.True(t, ok)
	assert.Equal(t, "B.", s)

	_, ok = SentenceAt(sentences, 2)
	assert.False(t, ok)

	_, ok = SentenceAt(sentences, -1)
	assert.False(t, ok)
}

func TestScenario_three_sentences(t *testing.T) {
	text := "A. B. C."
	sentences := Segment(text)
	require.Equal(t, []string{"A. ", "B. ", "C."}, sentences)

	r := NewRevealer([]string{"S0", "S1", "S2"})
	p := NewPlayer(len(sentences))

	p.TogglePlayPause()
	p.Tick()

	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, "S0", r.Reveal(p.Cursor()))
	span, ok := Locate(text, sentences, p.Cursor())
	require.True(t, ok)
	assert.Equal(t, "A.", text[span.Start:span.End])

	p.Tick()
	p.Tick()

	assert.Equal(t, StatusCompleted, p.Status())
	assert.Equal(t, "S0\n\nS1\n\nS2", r.Reveal(p.Cursor()))
}
