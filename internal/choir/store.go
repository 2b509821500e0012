// Package choir wires the playback engine, the mock chat, and settings into
// the application state shared by every display surface.
package choir

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/choir/internal/core/chat"
	"github.com/colonyops/choir/internal/core/clock"
	"github.com/colonyops/choir/internal/core/content"
	"github.com/colonyops/choir/internal/core/playback"
)

// DefaultInterval is the time between playback ticks.
const DefaultInterval = 2 * time.Second

// Snapshot is an immutable view of the store after a mutation. Version
// increases with every change so late deliveries can be discarded.
type Snapshot struct {
	Version uint64

	Text      string
	Sentences []string
	Total     int
	Cursor    int
	Status    playback.Status
	Started   bool

	Revealed string
	Sections int

	Highlight   playback.Span
	Highlighted bool
	Sentence    string

	Messages []chat.Message
	ChatOpen bool
}

// Running reports whether playback is advancing.
func (s Snapshot) Running() bool { return s.Status == playback.StatusRunning }

// Completed reports whether playback reached the last sentence.
func (s Snapshot) Completed() bool { return s.Status == playback.StatusCompleted }

// Listener receives snapshots after each change. Listeners are called
// outside the store lock and may call back into the store.
type Listener func(Snapshot)

// Store owns the application state. All mutations are serialized; scheduled
// ticks enter through the same lock as user actions.
type Store struct {
	mu sync.Mutex

	text      string
	sentences []string
	player    *playback.Player
	revealer  playback.Revealer
	chat      *chat.Session

	scheduler clock.Scheduler
	interval  time.Duration
	ticker    clock.Handle
	gen       uint64

	version   uint64
	listeners map[int]Listener
	nextID    int
	closed    bool

	log zerolog.Logger
}

// NewStore creates a store over doc. A non-positive interval uses
// DefaultInterval.
func NewStore(doc content.Document, scheduler clock.Scheduler, interval time.Duration, log zerolog.Logger) *Store {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if scheduler == nil {
		scheduler = clock.Real{}
	}

	s := &Store{
		revealer:  playback.NewRevealer(doc.Sections),
		chat:      chat.NewSession(nil),
		scheduler: scheduler,
		interval:  interval,
		listeners: make(map[int]Listener),
		log:       log,
	}
	s.loadText(doc.Text)
	return s
}

func (s *Store) loadText(text string) {
	s.text = text
	s.sentences = playback.Segment(text)
	s.player = playback.NewPlayer(len(s.sentences))
}

// Interval returns the tick interval.
func (s *Store) Interval() time.Duration { return s.interval }

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close stops the playback timer and drops all listeners. Later mutations
// are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTickerLocked()
	s.closed = true
	clear(s.listeners)
}

// SetText replaces the document text. Sentences are re-derived and the
// cursor is clamped into the new range.
func (s *Store) SetText(text string) {
	s.playbackOp("set-text", func() bool {
		if text == s.text {
			return false
		}
		s.text = text
		s.sentences = playback.Segment(text)
		s.player.SetCount(len(s.sentences))
		return true
	})
}

// TogglePlayPause starts, pauses, or restarts playback.
func (s *Store) TogglePlayPause() {
	s.playbackOp("toggle", func() bool {
		s.player.TogglePlayPause()
		return true
	})
}

// StepBack moves the cursor back one sentence and stops playback.
func (s *Store) StepBack() {
	s.playbackOp("step-back", s.player.StepBack)
}

// Complete jumps to the last sentence and stops playback.
func (s *Store) Complete() {
	s.playbackOp("complete", func() bool {
		s.player.Complete()
		return true
	})
}

// Reset returns playback and chat to their initial state. The current
// text, including any edits, is kept.
func (s *Store) Reset() {
	s.playbackOp("reset", func() bool {
		s.player.Reset()
		s.chat.Close()
		return true
	})
}

// OpenChat opens the chat panel, seeding it with the highlighted sentence.
func (s *Store) OpenChat() {
	s.chatOp("chat-open", func() bool {
		sentence, ok := s.highlightedLocked()
		return s.chat.Open(sentence, ok)
	})
}

// CloseChat closes the chat panel and discards the transcript.
func (s *Store) CloseChat() {
	s.chatOp("chat-close", func() bool {
		if !s.chat.IsOpen() && s.chat.Len() == 0 {
			return false
		}
		s.chat.Close()
		return true
	})
}

// ToggleChat opens a closed chat panel or closes an open one.
func (s *Store) ToggleChat() {
	s.chatOp("chat-toggle", func() bool {
		sentence, ok := s.highlightedLocked()
		s.chat.Toggle(sentence, ok)
		return true
	})
}

// SendMessage appends trimmed user text to an open chat. Blank text and a
// closed panel are rejected.
func (s *Store) SendMessage(text string) bool {
	sent := false
	s.chatOp("chat-send", func() bool {
		if !s.chat.IsOpen() {
			return false
		}
		_, sent = s.chat.Submit(text)
		return sent
	})
	return sent
}

// ClearChat empties the transcript and leaves the panel open.
func (s *Store) ClearChat() {
	s.chatOp("chat-clear", func() bool {
		if s.chat.Len() == 0 {
			return false
		}
		s.chat.Clear()
		return true
	})
}

// playbackOp cancels any pending tick before fn runs and reschedules when
// the player is still running afterwards.
func (s *Store) playbackOp(op string, fn func() bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.stopTickerLocked()
	changed := fn()
	if s.player.Running() {
		s.startTickerLocked()
	}

	s.commitLocked(op, changed)
}

func (s *Store) chatOp(op string, fn func() bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	changed := fn()
	s.commitLocked(op, changed)
}

func (s *Store) tick(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.gen || s.ticker == nil {
		s.mu.Unlock()
		s.log.Debug().Uint64("gen", gen).Msg("dropping stale tick")
		return
	}

	changed := s.player.Tick()
	if !s.player.Running() {
		s.stopTickerLocked()
	}

	s.commitLocked("tick", changed)
}

// commitLocked releases s.mu and notifies listeners when the state changed.
func (s *Store) commitLocked(op string, changed bool) {
	if !changed {
		s.mu.Unlock()
		return
	}

	s.version++
	snap := s.snapshotLocked()

	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	s.log.Debug().
		Str("op", op).
		Int("cursor", snap.Cursor).
		Stringer("status", snap.Status).
		Bool("chat_open", snap.ChatOpen).
		Uint64("version", snap.Version).
		Msg("state changed")

	for _, fn := range listeners {
		fn(snap)
	}
}

func (s *Store) startTickerLocked() {
	s.gen++
	gen := s.gen
	s.ticker = s.scheduler.Every(s.interval, func() { s.tick(gen) })
}

func (s *Store) stopTickerLocked() {
	if s.ticker == nil {
		return
	}
	s.ticker.Cancel()
	s.ticker = nil
	s.gen++
}

func (s *Store) highlightedLocked() (string, bool) {
	span, ok := playback.Locate(s.text, s.sentences, s.player.Cursor())
	if !ok {
		return "", false
	}
	return s.text[span.Start:span.End], true
}

func (s *Store) snapshotLocked() Snapshot {
	cursor := s.player.Cursor()
	span, ok := playback.Locate(s.text, s.sentences, cursor)

	snap := Snapshot{
		Version:     s.version,
		Text:        s.text,
		Sentences:   append([]string(nil), s.sentences...),
		Total:       s.player.Count(),
		Cursor:      cursor,
		Status:      s.player.Status(),
		Started:     s.player.Started(),
		Revealed:    s.revealer.Reveal(cursor),
		Sections:    s.revealer.Len(),
		Highlight:   span,
		Highlighted: ok,
		Messages:    s.chat.Messages(),
		ChatOpen:    s.chat.IsOpen(),
	}
	if ok {
		snap.Sentence = s.text[span.Start:span.End]
	}
	return snap
}
