package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/choir/internal/choir"
	"github.com/colonyops/choir/internal/core/notify"
)

type (
	drainNotificationsMsg struct{}
	snapshotReadyMsg      struct{}
)

// NotificationBuffer buffers notifications and emits coalesced drain signals.
type NotificationBuffer struct {
	mu            sync.Mutex
	notifications []notify.Notification
	signal        chan struct{}
}

// NewNotificationBuffer constructs a buffer for async notification delivery.
func NewNotificationBuffer() *NotificationBuffer {
	return &NotificationBuffer{
		notifications: make([]notify.Notification, 0),
		signal:        make(chan struct{}, 1),
	}
}

// Push appends a notification and emits a non-blocking drain signal.
func (b *NotificationBuffer) Push(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	b.mu.Lock()
	b.notifications = append(b.notifications, n)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns all buffered notifications and clears the buffer.
func (b *NotificationBuffer) Drain() []notify.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.notifications) == 0 {
		return nil
	}

	out := make([]notify.Notification, len(b.notifications))
	copy(out, b.notifications)
	b.notifications = b.notifications[:0]
	return out
}

// WaitForSignal blocks until there are notifications ready to drain.
func (b *NotificationBuffer) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return drainNotificationsMsg{}
	}
}

// SnapshotMailbox keeps only the newest store snapshot. Store listeners run
// on timer goroutines and inside Update, so they never block on the program.
type SnapshotMailbox struct {
	mu     sync.Mutex
	latest choir.Snapshot
	full   bool
	signal chan struct{}
}

// NewSnapshotMailbox constructs an empty mailbox.
func NewSnapshotMailbox() *SnapshotMailbox {
	return &SnapshotMailbox{signal: make(chan struct{}, 1)}
}

// Put replaces the held snapshot unless it is newer than s.
func (b *SnapshotMailbox) Put(s choir.Snapshot) {
	b.mu.Lock()
	if !b.full || s.Version > b.latest.Version {
		b.latest = s
		b.full = true
	}
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Take returns the held snapshot and empties the mailbox.
func (b *SnapshotMailbox) Take() (choir.Snapshot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.full {
		return choir.Snapshot{}, false
	}
	s := b.latest
	b.latest = choir.Snapshot{}
	b.full = false
	return s, true
}

// WaitForSignal blocks until a snapshot is available.
func (b *SnapshotMailbox) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return snapshotReadyMsg{}
	}
}
