package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/choir/internal/choir"
	"github.com/colonyops/choir/internal/core/styles"
)

const defaultPlayWidth = 80

type PlayCmd struct {
	flags *Flags
	app   *choir.App
	plain bool
}

// NewPlayCmd creates a new play command
func NewPlayCmd(flags *Flags, app *choir.App) *PlayCmd {
	return &PlayCmd{
		flags: flags,
		app:   app,
	}
}

// Register adds the play command to the application
func (cmd *PlayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "play",
		Usage:     "Play the document to stdout without the TUI",
		UsageText: "choir play [options]",
		Description: `Plays the document at the configured interval, printing each sentence
followed by the summary section it reveals. Output is rendered as markdown
when stdout is a terminal and printed as plain text otherwise.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "never render markdown",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PlayCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer
	if out == nil {
		out = os.Stdout
	}

	render := plainSection
	if !cmd.plain {
		if fd, ok := terminalFd(out); ok {
			width := defaultPlayWidth
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				width = w
			}
			r, err := newSectionRenderer(width)
			if err != nil {
				return err
			}
			render = r
		}
	}

	return playDocument(ctx, cmd.app.Store, cmd.app.Document.Sections, out, render)
}

// terminalFd reports the file descriptor of w when it is a terminal.
func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

type sectionRenderer func(section string) (string, error)

func plainSection(section string) (string, error) {
	return section + "\n", nil
}

func newSectionRenderer(width int) (sectionRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// playDocument starts playback on store and prints every newly reached
// sentence with its section until playback completes or ctx is done.
func playDocument(ctx context.Context, store *choir.Store, sections []string, out io.Writer, render sectionRenderer) error {
	snaps := make(chan choir.Snapshot, 16)
	unsubscribe := store.Subscribe(func(s choir.Snapshot) {
		select {
		case snaps <- s:
		case <-ctx.Done():
		}
	})
	defer unsubscribe()

	if store.Snapshot().Completed() {
		store.Reset()
	}
	store.TogglePlayPause()

	last := -1
	total := store.Snapshot().Total
	for {
		select {
		case <-ctx.Done():
			store.Close()
			return ctx.Err()
		case s := <-snaps:
			for i := last + 1; i <= s.Cursor; i++ {
				if err := printStep(out, s.Sentences[i], sections, i, total, render); err != nil {
					return err
				}
			}
			last = max(last, s.Cursor)

			if s.Completed() {
				log.Debug().Int("sentences", total).Msg("playback finished")
				return nil
			}
		}
	}
}

func printStep(out io.Writer, sentence string, sections []string, i, total int, render sectionRenderer) error {
	label := styles.MutedStyle.Render(fmt.Sprintf("[%d/%d]", i+1, total))
	if _, err := fmt.Fprintf(out, "%s %s\n", label, strings.TrimSpace(sentence)); err != nil {
		return err
	}

	if i >= len(sections) {
		return nil
	}

	rendered, err := render(sections[i])
	if err != nil {
		return fmt.Errorf("render section %d: %w", i+1, err)
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}
