package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/choir/internal/core/config"
	"github.com/colonyops/choir/internal/core/settings"
	"github.com/colonyops/choir/internal/core/styles"
	"github.com/colonyops/choir/internal/printer"
)

type SettingsCmd struct {
	flags *Flags

	model   string
	persona string
	prompt  string
}

// NewSettingsCmd creates a new settings command
func NewSettingsCmd(flags *Flags) *SettingsCmd {
	return &SettingsCmd{flags: flags}
}

// Register adds the settings command to the application
func (cmd *SettingsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "settings",
		Usage:     "Edit the default model and reviewer persona",
		UsageText: "choir settings [options]",
		Description: `Opens an interactive form and writes the result to the settings section of
the config file. Passing any of --model, --persona or --prompt skips the form.
The API key is read from CHOIR_API_KEY or entered in the form.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "model",
				Usage:       fmt.Sprintf("language model (%v)", settings.ModelValues()),
				Destination: &cmd.model,
			},
			&cli.StringFlag{
				Name:        "persona",
				Usage:       fmt.Sprintf("reviewer persona (%v)", settings.PersonaValues()),
				Destination: &cmd.persona,
			},
			&cli.StringFlag{
				Name:        "prompt",
				Usage:       "system prompt; required for the custom persona",
				Destination: &cmd.prompt,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SettingsCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)
	sel := cmd.flags.Config.Settings

	if cmd.model != "" || cmd.persona != "" || cmd.prompt != "" {
		sel = cmd.applyFlags(sel)
	} else {
		var err error
		sel, err = runSettingsForm(ctx, sel)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				p.Infof("settings unchanged")
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := sel.Validate(); err != nil {
		return err
	}

	if err := config.SaveSettings(cmd.flags.ConfigPath, sel); err != nil {
		return err
	}

	log.Info().Str("model", sel.Model).Str("persona", sel.Persona).Msg("settings saved")
	p.Successf("%s (%s)", settings.SavedMessage, cmd.flags.ConfigPath)
	return nil
}

// applyFlags overlays the flag values on sel. A persona flag rewrites the
// prompt unless --prompt is also given.
func (cmd *SettingsCmd) applyFlags(sel settings.Selection) settings.Selection {
	if cmd.model != "" {
		sel.Model = cmd.model
	}
	if cmd.persona != "" {
		sel.SelectPersona(cmd.persona)
	}
	if cmd.prompt != "" {
		sel.Prompt = cmd.prompt
	}
	return sel
}

func runSettingsForm(ctx context.Context, sel settings.Selection) (settings.Selection, error) {
	models := make([]huh.Option[string], 0, len(settings.Models))
	for _, m := range settings.Models {
		models = append(models, huh.NewOption(m.Label, m.Value))
	}

	personas := make([]huh.Option[string], 0, len(settings.Personas))
	for _, p := range settings.Personas {
		personas = append(personas, huh.NewOption(p.Label, p.Value))
	}

	persona := sel.Persona
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Model").
				Options(models...).
				Value(&sel.Model),
			huh.NewInput().
				Title("API key").
				Description("Stored in the config file; CHOIR_API_KEY takes precedence").
				EchoMode(huh.EchoModePassword).
				Value(&sel.APIKey),
			huh.NewSelect[string]().
				Title("Reviewer persona").
				Options(personas...).
				Value(&persona),
		),
	).WithTheme(styles.FormTheme()).RunWithContext(ctx)
	if err != nil {
		return sel, err
	}

	if persona != sel.Persona {
		sel.SelectPersona(persona)
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("System prompt").
				Description("Prefilled from the persona; edit freely").
				CharLimit(4000).
				Value(&sel.Prompt),
		),
	).WithTheme(styles.FormTheme()).RunWithContext(ctx)

	return sel, err
}
