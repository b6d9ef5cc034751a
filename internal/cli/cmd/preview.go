package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chordbar/internal/bootstrap"
)

var previewExec bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Try the bindings in the terminal",
	Long: `Run the bar inside the terminal instead of on the X server.

Keys are resolved exactly as on the bar. Commands are printed below the
bar instead of being run, unless --exec is given. Press ctrl+c to quit.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVar(&previewExec, "exec", false, "run commands instead of printing them")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if _, err := app.Env.LoadTree(); err != nil {
		return err
	}

	return app.Env.RunPreview(app.Context(), bootstrap.PreviewOptions{
		Exec:   previewExec,
		Input:  cmd.InOrStdin(),
		Output: cmd.OutOrStdout(),
	})
}
