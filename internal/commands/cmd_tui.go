package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/choir/internal/choir"
	"github.com/colonyops/choir/internal/core/logging"
	"github.com/colonyops/choir/internal/printer"
	"github.com/colonyops/choir/internal/tui"
	"github.com/colonyops/choir/pkg/utils"
)

type TuiCmd struct {
	flags *Flags
	app   *choir.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *choir.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	// Anything printed while the alt screen is up is shown after exit.
	held := &utils.DeferredWriter{}
	defer func() { _ = held.Flush(os.Stderr) }()
	p := printer.New(held)

	for _, w := range cmd.flags.Config.Warnings() {
		p.Warnf("%s: %s", w.Category, w.Message)
	}

	log.Info().
		Int("sentences", cmd.app.Store.Snapshot().Total).
		Int("sections", len(cmd.app.Document.Sections)).
		Dur("interval", cmd.app.Store.Interval()).
		Msg("starting tui")

	m := tui.New(cmd.app, logging.Component("tui"))
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
