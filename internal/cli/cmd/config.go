package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/cli/styles"
	"github.com/bnema/chordbar/internal/infrastructure/config"
	"github.com/bnema/chordbar/internal/infrastructure/xdg"
)

var (
	configForce     bool
	configSchemaDir string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where chordbar reads its files, write JSON schemas, or create the default files.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, bindings and log file locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write JSON schemas for the config and bindings files",
	Long: `Write config.schema.json and bindings.schema.json.

Point your editor at them for completion and validation while editing.
The default output directory is the config directory.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and example bindings",
	Long: `Write config.toml and bindings.json with default values into the config
directory. Existing files are kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configInitCmd)
	configSchemaCmd.Flags().StringVarP(&configSchemaDir, "output", "o", "", "output directory")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite existing files")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	configFile := app.Env.Manager.GetConfigFile()
	if configFile == "" {
		var err error
		if configFile, err = config.GetConfigFile(); err != nil {
			fmt.Fprintln(out, renderer.RenderError(err))
			return nil
		}
	}
	bindings, err := app.Env.Manager.BindingsPath()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	dirs, err := baseDirs(xdg.New())
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}

	paths := append([]styles.PathInfo{
		{Label: "config", Path: configFile, Exists: exists(configFile)},
		{Label: "bindings", Path: bindings, Exists: exists(bindings)},
	}, dirs...)
	fmt.Fprint(out, renderer.RenderPaths(paths))

	if !paths[0].Exists && !paths[1].Exists {
		fmt.Fprint(out, renderer.RenderInitHint())
	}
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	dir := configSchemaDir
	if dir == "" {
		var err error
		if dir, err = app.Env.Manager.ConfigDir(); err != nil {
			return err
		}
	}

	files, err := config.WriteSchemas(dir)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten(files))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	dir, err := app.Env.Manager.ConfigDir()
	if err != nil {
		return err
	}

	files, err := config.WriteDefaultFiles(dir, configForce)
	if errors.Is(err, config.ErrFileExists) {
		fmt.Fprint(out, renderer.RenderError(err))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderer.RenderWritten(files))
	return nil
}

// baseDirs lists the state and log directories chordbar writes to.
func baseDirs(p port.XDGPaths) ([]styles.PathInfo, error) {
	state, err := p.StateDir()
	if err != nil {
		return nil, err
	}
	logs, err := p.LogDir()
	if err != nil {
		return nil, err
	}
	return []styles.PathInfo{
		{Label: "state", Path: state, Exists: exists(state)},
		{Label: "logs", Path: logs, Exists: exists(logs)},
	}, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
