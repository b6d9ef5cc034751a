// Package xdg exposes chordbar's XDG base directories through port.XDGPaths.
package xdg

import (
	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) CacheDir() (string, error) {
	return config.GetCacheDir()
}

func (a *Adapter) LogDir() (string, error) {
	return config.GetLogDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
