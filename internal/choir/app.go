package choir

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/choir/internal/core/clock"
	"github.com/colonyops/choir/internal/core/config"
	"github.com/colonyops/choir/internal/core/content"
	"github.com/colonyops/choir/internal/core/logging"
	corenotify "github.com/colonyops/choir/internal/core/notify"
	"github.com/colonyops/choir/internal/core/settings"
	"github.com/colonyops/choir/internal/tui/notify"
)

// App is the central entry point for choir operations.
// Commands and the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Store    *Store
	Settings *settings.Manager
	Notify   *notify.Bus
	Config   *config.Config
	Document content.Document
}

// NewApp constructs an App from explicit dependencies.
func NewApp(cfg *config.Config, doc content.Document, scheduler clock.Scheduler, log zerolog.Logger) *App {
	bus := notify.NewBus(
		corenotify.NewMemoryStore(cfg.Notifications.HistoryLimit),
		logging.ComponentOf(log, "notify"),
	)

	return &App{
		Store:    NewStore(doc, scheduler, cfg.Playback.Interval, logging.ComponentOf(log, "store")),
		Settings: settings.NewManager(cfg.SessionSettings(), bus),
		Notify:   bus,
		Config:   cfg,
		Document: doc,
	}
}

// ReportStartup publishes warnings about the loaded document, such as a
// sentence count that does not match the number of summary sections.
func (a *App) ReportStartup() {
	if err := a.Document.Check(); err != nil {
		a.Notify.Warnf("%v; summary reveal is clamped", err)
	}
}

// Close releases the store timer.
func (a *App) Close() {
	a.Store.Close()
}
