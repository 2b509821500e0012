// Package chat holds the mock conversation shown next to the summary.
package chat

import (
	"strings"
	"sync"
	"time"
)

// FollowUpQuestion is the canned system reply seeded after quoting the
// highlighted sentence.
const FollowUpQuestion = "What would you like to change about this part of the document?"

// Role tags who authored a message.
type Role string

const (
	RoleUser   Role = "user"
	RoleSystem Role = "system"
)

// Message is a single chat entry. Display order is append order.
type Message struct {
	ID        int64
	Text      string
	IsUser    bool
	CreatedAt time.Time
}

// Role returns RoleUser for user messages and RoleSystem otherwise.
func (m Message) Role() Role {
	if m.IsUser {
		return RoleUser
	}
	return RoleSystem
}

// Quote formats a sentence as a markdown block quote.
func Quote(sentence string) string {
	return "> " + strings.TrimSpace(sentence)
}

// Session is the chat panel state: the open flag and the transcript.
// Closing the panel always discards the transcript.
//
// Session is not safe for concurrent use; the application store serializes
// access.
type Session struct {
	messages []Message
	open     bool
	ids      *IDGenerator
}

// NewSession returns a closed, empty session.
func NewSession(ids *IDGenerator) *Session {
	if ids == nil {
		ids = NewIDGenerator(time.Now)
	}
	return &Session{ids: ids}
}

// IsOpen reports whether the panel is open.
func (s *Session) IsOpen() bool { return s.open }

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	return append([]Message(nil), s.messages...)
}

// Len returns the number of messages.
func (s *Session) Len() int { return len(s.messages) }

// Add appends a message with a fresh id.
func (s *Session) Add(text string, isUser bool) Message {
	msg := Message{
		ID:        s.ids.Next(),
		Text:      text,
		IsUser:    isUser,
		CreatedAt: s.ids.now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Submit appends trimmed user input. Blank input is ignored and reported as
// false.
func (s *Session) Submit(text string) (Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, false
	}
	return s.Add(text, true), true
}

// Clear empties the transcript without changing the open flag.
func (s *Session) Clear() {
	s.messages = nil
}

// Open opens a closed panel. When a sentence is highlighted the transcript
// is seeded with a quote of it and the follow-up question. Opening an
// already open panel does nothing. Reports whether the panel changed.
func (s *Session) Open(highlighted string, ok bool) bool {
	if s.open {
		return false
	}
	if ok {
		s.Add(Quote(highlighted), false)
		s.Add(FollowUpQuestion, false)
	}
	s.open = true
	return true
}

// Close closes the panel and discards the transcript.
func (s *Session) Close() {
	s.open = false
	s.messages = nil
}

// Toggle closes an open panel or opens a closed one.
func (s *Session) Toggle(highlighted string, ok bool) {
	if s.open {
		s.Close()
		return
	}
	s.Open(highlighted, ok)
}

// IDGenerator produces strictly increasing ids derived from wall-clock
// nanoseconds.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDGenerator creates a generator reading time from now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

// Next returns the next id. If the clock has not advanced past the previous
// id, the previous id plus one is returned.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixNano()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
