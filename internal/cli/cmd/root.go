// Package cmd provides Cobra CLI commands for chordbar.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/chordbar/internal/bootstrap"
	"github.com/bnema/chordbar/internal/cli"
	"github.com/bnema/chordbar/internal/domain/build"
	"github.com/bnema/chordbar/internal/logging"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  bootstrap.Options
	rootCmd   = &cobra.Command{
		Use:   "chordbar",
		Short: "A keychord menu bar for X11",
		Long: `Chordbar - a keychord launcher that lives in a one-line bar.

Bindings form a tree: groups open on a key, commands run on a key.
The bar at the top of the screen shows the keys valid at the current
level. Press a key to descend or run, a back key to go up, an exit key
to close.

Running chordbar with no subcommand opens the bar on the X server named
by $DISPLAY. Use 'chordbar preview' to try the bindings in a terminal
and 'chordbar check' to validate them.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "keysyms":
				return nil
			}

			var err error
			app, err = cli.NewApp(cmd.Context(), rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
		RunE: runBar,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootOpts.ConfigFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/chordbar/config.{toml,yaml,json})")
	flags.StringVar(&rootOpts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&rootOpts.LogFormat, "log-format", "", "log format: text or json")
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// Commands that skip app initialization log through this one.
	ctx = logging.WithContext(ctx, logging.NewFromConfigValues(os.Getenv("CHORDBAR_LOG_LEVEL"), os.Getenv("CHORDBAR_LOG_FORMAT")))
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command tree. Cobra skips PersistentPostRun when RunE
// fails, so the app is closed here as well.
func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	closeApp()
	return err
}

func closeApp() {
	if app == nil {
		return
	}
	if err := app.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	app = nil
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func runBar(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := app.Context()
	log := logging.FromContext(ctx)

	// A missing or invalid bindings file stops here, before the bar opens.
	tree, err := app.Env.LoadTree()
	if err != nil {
		return err
	}
	log.Info().
		Str("bindings", app.Env.BindingsPath).
		Int("nodes", tree.Len()).
		Msg("bindings loaded")

	return app.Env.RunX11(ctx)
}
