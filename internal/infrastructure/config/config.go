// Package config loads chordbar's configuration and bindings files.
package config

import (
	"fmt"

	"github.com/bnema/chordbar/internal/domain/entity"
)

// Config represents the complete configuration for chordbar.
type Config struct {
	// BindingsFile is the bindings tree file, relative to the config directory
	// unless absolute.
	BindingsFile string `mapstructure:"bindings_file" yaml:"bindings_file" toml:"bindings_file" json:"bindings_file" jsonschema:"default=bindings.json"`
	// Shell, when set, runs every command line as [shell, "-c", line].
	// When empty, command lines are split into argv and executed directly.
	Shell string `mapstructure:"shell" yaml:"shell" toml:"shell" json:"shell,omitempty"`
	// Separator is drawn between a key and its label.
	Separator  string           `mapstructure:"separator" yaml:"separator" toml:"separator" json:"separator" jsonschema:"default=:"`
	ActionKeys ActionKeysConfig `mapstructure:"action_keys" yaml:"action_keys" toml:"action_keys" json:"action_keys"`
	Display    DisplayConfig    `mapstructure:"display" yaml:"display" toml:"display" json:"display"`
	Color      ColorConfig      `mapstructure:"color" yaml:"color" toml:"color" json:"color"`
	Font       FontConfig       `mapstructure:"font" yaml:"font" toml:"font" json:"font"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// ActionKeysConfig lists the keys that work at every level of the tree.
type ActionKeysConfig struct {
	Back []string `mapstructure:"back" yaml:"back" toml:"back" json:"back"`
	Exit []string `mapstructure:"exit" yaml:"exit" toml:"exit" json:"exit"`
}

// DisplayConfig controls the bar geometry.
type DisplayConfig struct {
	BarHeight      int `mapstructure:"bar_height_in_pixels" yaml:"bar_height_in_pixels" toml:"bar_height_in_pixels" json:"bar_height_in_pixels" jsonschema:"minimum=1"`
	BorderSize     int `mapstructure:"border_size_in_pixels" yaml:"border_size_in_pixels" toml:"border_size_in_pixels" json:"border_size_in_pixels" jsonschema:"minimum=0"`
	InitialPadding int `mapstructure:"initial_padding_in_pixels" yaml:"initial_padding_in_pixels" toml:"initial_padding_in_pixels" json:"initial_padding_in_pixels" jsonschema:"minimum=0"`
	Padding        int `mapstructure:"padding_in_pixels" yaml:"padding_in_pixels" toml:"padding_in_pixels" json:"padding_in_pixels" jsonschema:"minimum=0"`
	Skip           int `mapstructure:"skip_in_pixels" yaml:"skip_in_pixels" toml:"skip_in_pixels" json:"skip_in_pixels" jsonschema:"minimum=0"`
}

// ColorConfig holds hex colors ("#rrggbb" or "#rgb").
type ColorConfig struct {
	Background string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Border     string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
	Separator  string `mapstructure:"separator" yaml:"separator" toml:"separator" json:"separator"`
	Key        string `mapstructure:"key" yaml:"key" toml:"key" json:"key"`
	Text       string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
}

// FontConfig selects the bar font.
type FontConfig struct {
	Name  string  `mapstructure:"name" yaml:"name" toml:"name" json:"name"`
	Style string  `mapstructure:"style" yaml:"style" toml:"style" json:"style"`
	Size  float64 `mapstructure:"size" yaml:"size" toml:"size" json:"size" jsonschema:"exclusiveMinimum=0"`
	// Path skips font discovery when set.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File enables a copy of the log in $XDG_STATE_HOME/chordbar/logs.
	File       bool `mapstructure:"file" yaml:"file" toml:"file" json:"file"`
	MaxSizeMB  int  `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int  `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// ActionKeySets resolves the back and exit keys.
func (c *Config) ActionKeySets() (back, exit entity.KeySet, err error) {
	back, err = entity.ParseKeySet(c.ActionKeys.Back)
	if err != nil {
		return nil, nil, fmt.Errorf("action_keys.back: %w", err)
	}
	exit, err = entity.ParseKeySet(c.ActionKeys.Exit)
	if err != nil {
		return nil, nil, fmt.Errorf("action_keys.exit: %w", err)
	}
	return back, exit, nil
}

// BuildOptions returns the tree construction options derived from c.
func (c *Config) BuildOptions() entity.BuildOptions {
	return entity.BuildOptions{Shell: c.Shell}
}
