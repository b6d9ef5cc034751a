// Package bootstrap assembles chordbar's components for a run.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/infrastructure/config"
	"github.com/bnema/chordbar/internal/logging"
	"github.com/bnema/chordbar/internal/ui/dispatcher"
	"github.com/bnema/chordbar/internal/ui/input"
)

// Options selects the configuration and logging overrides for a run.
type Options struct {
	// ConfigFile overrides the config file search.
	ConfigFile string
	// LogLevel and LogFormat override the configured values when set.
	LogLevel  string
	LogFormat string
	// LogOutput defaults to os.Stderr.
	LogOutput io.Writer
}

// Environment holds the loaded configuration and logger.
type Environment struct {
	Manager *config.Manager
	Config  *config.Config
	Logger  zerolog.Logger

	// Tree is set by LoadTree.
	Tree         *entity.BindTree
	BindingsPath string

	logFile io.Writer
	closers []io.Closer
}

// Load reads the configuration and builds the logger. The returned context
// carries the logger.
func Load(ctx context.Context, opts Options) (context.Context, *Environment, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return ctx, nil, err
	}
	if err := mgr.Load(); err != nil {
		return ctx, nil, err
	}
	cfg := mgr.Get()

	env := &Environment{Manager: mgr, Config: cfg}

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	format := cfg.Logging.Format
	if opts.LogFormat != "" {
		format = opts.LogFormat
	}

	logCfg := logging.DefaultConfig()
	logCfg.TimeFormat = "15:04:05"
	logCfg.Output = opts.LogOutput
	if format == "json" {
		logCfg.Format = "json"
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return ctx, nil, err
	}
	logCfg.Level = lvl

	if cfg.Logging.File {
		logDir, derr := config.GetLogDir()
		if derr != nil {
			return ctx, nil, fmt.Errorf("resolve log directory: %w", derr)
		}
		rotator, rerr := logging.NewLogRotator(logDir, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
		if rerr != nil {
			return ctx, nil, fmt.Errorf("open log file: %w", rerr)
		}
		logCfg.File = rotator
		env.logFile = rotator
		env.closers = append(env.closers, rotator)
	}

	env.Logger = logging.New(logCfg)
	ctx = logging.WithContext(ctx, env.Logger)

	env.Logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("level", lvl.String()).
		Msg("configuration loaded")

	return ctx, env, nil
}

// LoadTree reads the bindings file named by the configuration and builds
// the binding tree.
func (e *Environment) LoadTree() (*entity.BindTree, error) {
	path, err := e.Manager.BindingsPath()
	if err != nil {
		return nil, err
	}
	e.BindingsPath = path

	tree, err := config.LoadTree(path, e.Config.BuildOptions())
	if err != nil {
		return nil, err
	}
	e.Tree = tree
	return tree, nil
}

// NewDispatcher wires a resolver at the tree root to the given collaborators.
func (e *Environment) NewDispatcher(
	mapper port.KeyboardMapper,
	events port.WindowEvents,
	renderer port.BarRenderer,
	spawner port.ProcessSpawner,
) (*dispatcher.Dispatcher, error) {
	if e.Tree == nil {
		return nil, errors.New("binding tree not loaded")
	}
	back, exit, err := e.Config.ActionKeySets()
	if err != nil {
		return nil, err
	}

	resolver := input.NewResolver(mapper, e.Tree.Root(), input.Options{
		Back:          back,
		Exit:          exit,
		ShiftKeycodes: input.ShiftKeycodes(mapper),
	})
	return dispatcher.New(resolver, events, renderer, spawner), nil
}

// Close releases resources opened by Load.
func (e *Environment) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}
