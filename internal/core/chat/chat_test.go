package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	t := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestSession_Add(t *testing.T) {
	s := NewSession(NewIDGenerator(fixedClock()))

	a := s.Add("hello", true)
	b := s.Add("hi there", false)

	require.Equal(t, 2, s.Len())
	assert.Less(t, a.ID, b.ID)
	assert.Equal(t, RoleUser, a.Role())
	assert.Equal(t, RoleSystem, b.Role())
	assert.Equal(t, []Message{a, b}, s.Messages())
}

func TestSession_Submit(t *testing.T) {
	s := NewSession(nil)

	msg, ok := s.Submit("  needs a citation \n")
	require.True(t, ok)
	assert.Equal(t, "needs a citation", msg.Text)
	assert.True(t, msg.IsUser)

	_, ok = s.Submit(" \n\t ")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestSession_Open_seeds_highlighted_sentence(t *testing.T) {
	s := NewSession(nil)

	changed := s.Open("B. ", true)

	require.True(t, changed)
	assert.True(t, s.IsOpen())
	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "> B.", msgs[0].Text)
	assert.False(t, msgs[0].IsUser)
	assert.Equal(t, FollowUpQuestion, msgs[1].Text)
	assert.False(t, msgs[1].IsUser)
}

func TestSession_Open_without_highlight(t *testing.T) {
	s := NewSession(nil)

	s.Open("", false)

	assert.True(t, s.IsOpen())
	assert.Equal(t, 0, s.Len())
}

func TestSession_Open_when_open_is_noop(t *testing.T) {
	s := NewSession(nil)
	s.Open("A.", true)

	changed := s.Open("B.", true)

	assert.False(t, changed)
	assert.Equal(t, 2, s.Len())
}

func TestSession_Close_clears_messages(t *testing.T) {
	s := NewSession(nil)
	s.Open("A.", true)
	s.Submit("rewrite this")
	require.Equal(t, 3, s.Len())

	s.Close()

	assert.False(t, s.IsOpen())
	assert.Equal(t, 0, s.Len())

	s.Open("", false)
	assert.Equal(t, 0, s.Len(), "reopen without highlight seeds nothing")
}

func TestSession_Clear_keeps_panel_open(t *testing.T) {
	s := NewSession(nil)
	s.Open("A.", true)

	s.Clear()

	assert.True(t, s.IsOpen())
	assert.Equal(t, 0, s.Len())
}

func TestSession_Toggle(t *testing.T) {
	s := NewSession(nil)

	s.Toggle("A.", true)
	assert.True(t, s.IsOpen())
	assert.Equal(t, 2, s.Len())

	s.Toggle("A.", true)
	assert.False(t, s.IsOpen())
	assert.Equal(t, 0, s.Len())
}

func TestIDGenerator_is_strictly_increasing(t *testing.T) {
	g := NewIDGenerator(fixedClock())

	prev := g.Next()
	for range 100 {
		id := g.Next()
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "> Some sentence.", Quote("  Some sentence. "))
}
