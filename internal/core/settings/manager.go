package settings

import (
	"sync"

	"github.com/colonyops/choir/internal/core/notify"
)

// SavedMessage is the confirmation shown after a save.
const SavedMessage = "Settings saved successfully"

// Publisher receives the save confirmation.
type Publisher interface {
	Publish(n notify.Notification)
}

// Manager owns the saved selection. The settings dialog edits a draft copy
// and either saves or discards it.
type Manager struct {
	mu        sync.Mutex
	saved     Selection
	publisher Publisher
}

// NewManager creates a manager holding initial. publisher may be nil.
func NewManager(initial Selection, publisher Publisher) *Manager {
	return &Manager{saved: initial, publisher: publisher}
}

// Current returns the saved selection.
func (m *Manager) Current() Selection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved
}

// Draft returns a copy of the saved selection for editing.
func (m *Manager) Draft() Selection {
	return m.Current()
}

// Save validates and stores draft, then publishes the confirmation.
func (m *Manager) Save(draft Selection) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	m.saved = draft
	m.mu.Unlock()

	if m.publisher != nil {
		m.publisher.Publish(notify.Notification{
			Level:   notify.LevelInfo,
			Message: SavedMessage,
		})
	}
	return nil
}
