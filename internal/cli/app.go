// Package cli holds the state shared by chordbar's CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/chordbar/internal/application/usecase"
	"github.com/bnema/chordbar/internal/bootstrap"
	"github.com/bnema/chordbar/internal/cli/styles"
	"github.com/bnema/chordbar/internal/domain/build"
)

// App holds CLI dependencies.
type App struct {
	Env       *bootstrap.Environment
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx  context.Context
	opts bootstrap.Options
}

// NewApp loads the configuration and logger.
func NewApp(ctx context.Context, opts bootstrap.Options) (*App, error) {
	ctx, env, err := bootstrap.Load(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &App{
		Env:   env,
		Theme: styles.NewTheme(),
		ctx:   ctx,
		opts:  opts,
	}, nil
}

// Context returns the context carrying the app logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Options returns the options the app was loaded with.
func (a *App) Options() bootstrap.Options {
	return a.opts
}

// Check loads the bindings and reports what they contain. Load failures end
// up in the report, not in the returned error.
func (a *App) Check(ctx context.Context) styles.CheckReport {
	report := styles.CheckReport{ConfigFile: a.Env.Manager.GetConfigFile()}

	tree, err := a.Env.LoadTree()
	report.BindingsFile = a.Env.BindingsPath
	if err != nil {
		report.Err = err
		return report
	}

	back, exit, err := a.Env.Config.ActionKeySets()
	if err != nil {
		report.Err = err
		return report
	}

	out, err := usecase.NewCheckBindingsUseCase().Execute(ctx, usecase.CheckBindingsInput{
		Tree: tree,
		Back: back,
		Exit: exit,
	})
	if err != nil {
		report.Err = err
		return report
	}
	report.Summary = out
	return report
}

// Reload rereads the configuration from disk with the original options.
func (a *App) Reload() error {
	ctx, env, err := bootstrap.Load(a.ctx, a.opts)
	if err != nil {
		return err
	}
	if cerr := a.Env.Close(); cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
	}
	a.Env = env
	a.ctx = ctx
	return nil
}

// Close releases resources.
func (a *App) Close() error {
	if a.Env == nil {
		return nil
	}
	return a.Env.Close()
}
