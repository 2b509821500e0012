// Package notify provides the in-process notification bus feeding toasts and
// the notification history.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/choir/internal/core/notify"
)

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus is a synchronous in-process notification bus. It records notifications
// in a Store and then dispatches them to subscribers inline.
type Bus struct {
	store       notify.Store
	log         zerolog.Logger
	now         func() time.Time
	subscribers map[int]Subscriber
	nextID      int
	mu          sync.Mutex
}

// NewBus creates a notification bus backed by the given store.
// If store is nil, notifications are dispatched to subscribers but not kept.
func NewBus(store notify.Store, log zerolog.Logger) *Bus {
	return &Bus{
		store:       store,
		log:         log,
		now:         time.Now,
		subscribers: make(map[int]Subscriber),
	}
}

// Subscribe registers a callback that will be invoked on every Publish and
// returns a function that removes it.
func (b *Bus) Subscribe(fn Subscriber) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subscribers[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers, id)
	}
}

// Publish records a notification and dispatches it to all subscribers.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.now()
	}

	if b.store != nil {
		id, err := b.store.Save(context.Background(), n)
		if err != nil {
			b.log.Error().Err(err).Str("message", n.Message).Msg("failed to record notification")
		} else {
			n.ID = id
		}
	}

	b.log.Debug().
		Str("level", string(n.Level)).
		Str("message", n.Message).
		Msg("notification")

	b.mu.Lock()
	subs := make([]Subscriber, 0, len(b.subscribers))
	for i := 0; i < b.nextID; i++ {
		if fn, ok := b.subscribers[i]; ok {
			subs = append(subs, fn)
		}
	}
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

// Errorf publishes an error-level notification.
func (b *Bus) Errorf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelError,
		Message: fmt.Sprintf(format, args...),
	})
}

// Warnf publishes a warning-level notification.
func (b *Bus) Warnf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelWarning,
		Message: fmt.Sprintf(format, args...),
	})
}

// Infof publishes an info-level notification.
func (b *Bus) Infof(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelInfo,
		Message: fmt.Sprintf(format, args...),
	})
}

// History returns all recorded notifications (newest first).
// Returns nil if no store is configured.
func (b *Bus) History() ([]notify.Notification, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(context.Background())
}

// Count returns the number of recorded notifications.
func (b *Bus) Count() int64 {
	if b.store == nil {
		return 0
	}
	n, err := b.store.Count(context.Background())
	if err != nil {
		b.log.Error().Err(err).Msg("failed to count notifications")
		return 0
	}
	return n
}

// Clear deletes all recorded notifications.
func (b *Bus) Clear() error {
	if b.store == nil {
		return nil
	}
	return b.store.Clear(context.Background())
}
