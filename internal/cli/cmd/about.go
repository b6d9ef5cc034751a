package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chordbar/internal/cli/styles"
	"github.com/bnema/chordbar/internal/domain/entity"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, the config and bindings in use, the repository URL, and contributors.`,
	Args:  cobra.NoArgs,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func countCommands(tree *entity.BindTree) int {
	n := 0
	tree.Walk(func(node entity.Node, _ int) bool {
		if node.IsLeaf() {
			n++
		}
		return true
	})
	return n
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	info := styles.AboutInfo{
		Build:      app.BuildInfo,
		ConfigFile: app.Env.Manager.GetConfigFile(),
		Bindings:   -1,
	}
	if tree, err := app.Env.LoadTree(); err == nil {
		info.Bindings = countCommands(tree)
	}
	if exists(app.Env.BindingsPath) {
		info.BindingsFile = app.Env.BindingsPath
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(info))
	return nil
}
