package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/choir/internal/choir"
	"github.com/colonyops/choir/internal/commands"
	"github.com/colonyops/choir/internal/core/clock"
	"github.com/colonyops/choir/internal/core/config"
	"github.com/colonyops/choir/internal/core/content"
	"github.com/colonyops/choir/internal/core/logging"
	"github.com/colonyops/choir/internal/core/styles"
	"github.com/colonyops/choir/internal/printer"
	"github.com/colonyops/choir/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	// .env is optional; it only supplies CHOIR_* variables
	_ = godotenv.Load()

	ctx := logging.WithRunID(context.Background(), logging.NewRunID())
	ctx = printer.WithPrinter(ctx, printer.New(os.Stdout))

	var (
		logCloser func()
		choirApp  = &choir.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "choir",
		Usage:     "Play a document sentence by sentence alongside its summary",
		UsageText: "choir [global options] command [command options]",
		Description: `Choir plays a document one sentence at a time, highlighting the current
sentence and revealing the matching summary section. A side panel lets you
quote the highlighted sentence into a chat transcript.

Run 'choir' with no arguments to open the interactive player.
Run 'choir play' to print the playback to stdout.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error); overrides log_level in the config",
				Sources:     cli.EnvVars("CHOIR_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/choir.log)",
				Sources:     cli.EnvVars("CHOIR_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CHOIR_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("CHOIR_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "text",
				Usage:       "document text file (defaults to the built-in abstract)",
				Sources:     cli.EnvVars("CHOIR_TEXT"),
				Destination: &flags.TextFile,
			},
			&cli.StringFlag{
				Name:        "sections",
				Usage:       "directory of markdown summary sections, one per sentence",
				Sources:     cli.EnvVars("CHOIR_SECTIONS"),
				Destination: &flags.SectionsDir,
			},
			&cli.DurationFlag{
				Name:        "interval",
				Usage:       "time between sentences",
				Sources:     cli.EnvVars("CHOIR_INTERVAL"),
				Destination: &flags.Interval,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.ApplyOverrides(cfg)

			if key := os.Getenv("CHOIR_API_KEY"); key != "" {
				cfg.APIKeyOverride = key
			}

			level := flags.LogLevel
			if level == "" {
				level = cfg.LogLevel
			}
			logFile := flags.LogFile
			if logFile == "" {
				logFile = cfg.LogFile()
			}

			logger, closer, err := logutils.New(level, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			command := "tui"
			if c.Args().Present() {
				command = c.Args().First()
			}
			ctx = logging.WithCommand(ctx, command)
			log.Logger = log.Logger.With().Ctx(ctx).Logger()

			// Validation ensures the theme name is known
			styles.SetThemeByName(cfg.Theme)

			doc, err := content.Load(cfg.ContentOptions())
			if err != nil {
				return ctx, fmt.Errorf("load document: %w", err)
			}

			flags.Config = cfg

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*choirApp = *choir.NewApp(cfg, doc, clock.Real{}, log.Logger)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if choirApp.Store != nil {
				choirApp.Close()
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, choirApp)

	app = commands.NewPlayCmd(flags, choirApp).Register(app)
	app = commands.NewSegmentCmd(flags, choirApp).Register(app)
	app = commands.NewSettingsCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'choir --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
