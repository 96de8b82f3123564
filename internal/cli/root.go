package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/studyboard/internal/cli/formatter"
	"github.com/alexanderramin/studyboard/internal/config"
	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/alexanderramin/studyboard/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// App holds everything the commands share.
type App struct {
	Board domain.Board

	// Viper collects flags, STUDYBOARD_* env vars and the config file.
	// Config and Logger are filled in by configure before a command runs.
	Viper  *viper.Viper
	Config config.Config
	Logger *zap.Logger

	// IsInteractive reports whether stdin is a terminal the TUI can own.
	IsInteractive func() bool

	// Launch runs the interactive dashboard. Nil means runTUI.
	Launch func(app *App) error
}

// configure loads settings and, unless one was injected, builds the logger.
// console selects stderr logging when no log file is configured.
func (a *App) configure(console bool) error {
	if a.Viper == nil {
		a.Viper = config.NewViper()
	}
	cfg, err := config.Load(a.Viper)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.Config = cfg

	if a.Logger == nil {
		logger, err := logging.New(cfg, console)
		if err != nil {
			return err
		}
		a.Logger = logger
	}
	return nil
}

// bindFlag ties a flag to a config key. Binding only fails for a nil
// flag, which is a programming error.
func (a *App) bindFlag(key string, flags *pflag.FlagSet, name string) {
	if a.Viper == nil {
		a.Viper = config.NewViper()
	}
	if err := a.Viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("binding flag %q: %v", name, err))
	}
}

// NewRootCmd creates the top-level "studyboard" command. Without a
// subcommand it opens the dashboard, or prints it when not on a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studyboard",
		Short:         "Weekly study schedule dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := app.IsInteractive != nil && app.IsInteractive()
			if err := app.configure(false); err != nil {
				return err
			}
			if !interactive {
				return printBoard(cmd.OutOrStdout(), app, defaultShowWidth, true)
			}
			launch := app.Launch
			if launch == nil {
				launch = runTUI
			}
			return launch(app)
		},
	}

	pf := root.PersistentFlags()
	pf.String("env", "", "Environment name (development or production)")
	pf.String("log-file", "", "Write logs to this file")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")
	app.bindFlag("env", pf, "env")
	app.bindFlag("log_file", pf, "log-file")
	app.bindFlag("log_level", pf, "log-level")

	root.Flags().Bool("mouse", true, "Toggle tasks with mouse clicks")
	app.bindFlag("mouse", root.Flags(), "mouse")

	root.AddCommand(
		newShowCmd(app),
		newServeCmd(app),
	)
	return root
}

// printBoard renders the board once with a fresh, empty tracker.
func printBoard(w io.Writer, app *App, width int, notes bool) error {
	tracker := domain.NewCompletionTracker(app.Board.Schedule)
	out := formatter.FormatBoard(app.Board, tracker, formatter.BoardOptions{Width: width, Notes: notes})
	_, err := fmt.Fprint(w, out)
	return err
}
