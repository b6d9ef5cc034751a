package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/chordbar/internal/cli/styles"
	"github.com/bnema/chordbar/internal/infrastructure/config"
	"github.com/bnema/chordbar/internal/logging"
)

const watchDebounce = 200 * time.Millisecond

var checkWatch bool

var errCheckFailed = errors.New("bindings check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and bindings files",
	Long: `Load the config file and the bindings file and build the binding tree.

Errors (unknown key names, duplicate keys in a group, empty groups, bad
command lines) make the command fail. Keys hidden by a back or exit key
are legal and only reported as warnings.

With --watch, the files are checked again every time one is saved.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "re-check whenever a file changes")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewCheckRenderer(app.Theme)
	out := cmd.OutOrStdout()

	report := app.Check(app.Context())
	fmt.Fprintln(out, renderer.Render(report))

	if !checkWatch {
		if !report.OK() {
			return errCheckFailed
		}
		return nil
	}

	var paths []string
	for _, p := range []string{report.BindingsFile, report.ConfigFile} {
		if p != "" {
			paths = append(paths, p)
		}
	}

	ctx := cmd.Context()
	log := logging.FromContext(app.Context())
	log.Debug().Strs("paths", paths).Msg("watching files")

	return config.WatchFiles(ctx, paths, watchDebounce, func(path string) {
		fmt.Fprint(out, renderer.RenderReloading(path))
		if err := app.Reload(); err != nil {
			fmt.Fprintln(out, renderer.Render(styles.CheckReport{
				ConfigFile:   report.ConfigFile,
				BindingsFile: report.BindingsFile,
				Err:          err,
			}))
			return
		}
		fmt.Fprintln(out, renderer.Render(app.Check(app.Context())))
	})
}
