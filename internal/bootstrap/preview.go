package bootstrap

import (
	"context"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/infrastructure/config"
	"github.com/bnema/chordbar/internal/infrastructure/process"
	"github.com/bnema/chordbar/internal/infrastructure/terminal"
	"github.com/bnema/chordbar/internal/logging"
)

// PreviewOptions configures RunPreview.
type PreviewOptions struct {
	// Exec runs commands instead of printing them.
	Exec bool
	// Input and Output default to the process terminal.
	Input  io.Reader
	Output io.Writer
}

// RunPreview runs the control loop inside the terminal.
func (e *Environment) RunPreview(ctx context.Context, opts PreviewOptions) error {
	cfg := e.Config

	colors, err := terminalColors(cfg.Color)
	if err != nil {
		return err
	}

	session := terminal.NewSession(ctx, terminal.Options{
		Separator: cfg.Separator,
		Colors:    colors,
		BackKeys:  cfg.ActionKeys.Back,
		ExitKeys:  cfg.ActionKeys.Exit,
		Input:     opts.Input,
		Output:    opts.Output,
	})

	// Log lines go under the bar instead of over the terminal UI.
	var logOut io.Writer = zerolog.ConsoleWriter{Out: session, NoColor: true, TimeFormat: "15:04:05"}
	if e.logFile != nil {
		logOut = zerolog.MultiLevelWriter(logOut, e.logFile)
	}
	ctx = logging.WithContext(ctx, e.Logger.Output(logOut))
	ctx = logging.WithComponent(ctx, "preview")

	var spawner port.ProcessSpawner = process.NewDryRunSpawner(session)
	if opts.Exec {
		spawner = process.NewSpawner()
	}

	d, err := e.NewDispatcher(terminal.IdentityMapper{}, session, session, spawner)
	if err != nil {
		return err
	}
	return session.Run(ctx, d.Run)
}

func terminalColors(c config.ColorConfig) (terminal.Colors, error) {
	p, err := c.Palette()
	if err != nil {
		return terminal.Colors{}, err
	}
	return terminal.Colors{
		Background: hexColor(p.Background),
		Separator:  hexColor(p.Separator),
		Key:        hexColor(p.Key),
		Text:       hexColor(p.Text),
	}, nil
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
