package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chordbar/internal/cli/styles"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the binding tree",
	Args:  cobra.NoArgs,
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	tree, err := app.Env.LoadTree()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewTreeRenderer(app.Theme).Render(tree))
	return nil
}
