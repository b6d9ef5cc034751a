package bootstrap

import (
	"context"
	"fmt"

	"github.com/bnema/chordbar/internal/infrastructure/fonts"
	"github.com/bnema/chordbar/internal/infrastructure/process"
	"github.com/bnema/chordbar/internal/infrastructure/x11"
	"github.com/bnema/chordbar/internal/logging"
	"github.com/bnema/chordbar/internal/ui/bar"
)

// RunX11 shows the bar on the X server and runs the control loop until the
// session terminates.
func (e *Environment) RunX11(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "x11")
	cfg := e.Config
	timer := NewStartupTimer()

	palette, err := cfg.Color.Palette()
	if err != nil {
		return err
	}

	display, err := x11.Open(ctx, x11.Options{
		BarHeight:  cfg.Display.BarHeight,
		BorderSize: cfg.Display.BorderSize,
		Background: palette.Background,
		Border:     palette.Border,
	})
	if err != nil {
		return fmt.Errorf("open bar window: %w", err)
	}
	defer display.Close()
	timer.Mark("display")

	face := LoadFace(ctx, fonts.NewDetector(), cfg.Font)
	defer face.Close()
	timer.Mark("font")

	renderer := bar.NewRenderer(face, display, bar.Options{
		Separator: cfg.Separator,
		Spacing: bar.Spacing{
			Initial: cfg.Display.InitialPadding,
			Padding: cfg.Display.Padding,
			Skip:    cfg.Display.Skip,
		},
		Colors: bar.Colors{
			Background: palette.Background,
			Separator:  palette.Separator,
			Key:        palette.Key,
			Text:       palette.Text,
		},
	})

	d, err := e.NewDispatcher(display, display, renderer, process.NewSpawner())
	if err != nil {
		return err
	}
	timer.Mark("dispatcher")
	timer.LogDebug(ctx)

	return d.Run(ctx)
}
