package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/bnema/chordbar/internal/domain/entity"
)

// BindingSpec is one node of the bindings file. A node has either a command
// or a group of children.
type BindingSpec struct {
	Name        string        `mapstructure:"name" yaml:"name" toml:"name" json:"name" jsonschema:"required"`
	Key         string        `mapstructure:"key" yaml:"key" toml:"key" json:"key,omitempty" jsonschema:"description=A single character or an X11 keysym name (see 'chordbar keysyms')"`
	Command     *string       `mapstructure:"command" yaml:"command,omitempty" toml:"command,omitempty" json:"command,omitempty"`
	KeepRunning bool          `mapstructure:"keep_running" yaml:"keep_running,omitempty" toml:"keep_running,omitempty" json:"keep_running,omitempty"`
	Group       []BindingSpec `mapstructure:"group" yaml:"group,omitempty" toml:"group,omitempty" json:"group,omitempty"`
}

// NodeSpec converts the file representation into tree construction data.
func (b BindingSpec) NodeSpec() entity.NodeSpec {
	spec := entity.NodeSpec{Name: b.Name, Key: b.Key}
	if b.Command != nil {
		spec.Command = &entity.CommandSpec{Line: *b.Command, KeepRunning: b.KeepRunning}
	}
	if b.Group != nil {
		spec.Group = make([]entity.NodeSpec, len(b.Group))
		for i, child := range b.Group {
			spec.Group[i] = child.NodeSpec()
		}
	}
	return spec
}

// LoadBindings reads a bindings file in any format viper supports (json,
// toml, yaml, ...), chosen by extension.
func LoadBindings(path string) (*BindingSpec, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to find bindings file at %s", path)
		}
		return nil, fmt.Errorf("bindings file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read bindings file at %s: %w", path, err)
	}

	spec := &BindingSpec{}
	if err := v.Unmarshal(spec); err != nil {
		return nil, fmt.Errorf("failed to parse bindings file at %s: %w", path, err)
	}
	return spec, nil
}

// LoadTree reads the bindings file and builds the binding tree.
func LoadTree(path string, opts entity.BuildOptions) (*entity.BindTree, error) {
	spec, err := LoadBindings(path)
	if err != nil {
		return nil, err
	}
	tree, err := entity.BuildTree(spec.NodeSpec(), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// ExampleBindings returns the bindings written by "chordbar config init".
func ExampleBindings() BindingSpec {
	cmd := func(s string) *string { return &s }
	return BindingSpec{
		Name: "chordbar",
		Key:  "space",
		Group: []BindingSpec{
			{
				Name: "Apps",
				Key:  "a",
				Group: []BindingSpec{
					{Name: "Browser", Key: "b", Command: cmd("xdg-open https://example.org")},
					{Name: "Terminal", Key: "t", Command: cmd("xterm")},
				},
			},
			{
				Name: "Volume",
				Key:  "v",
				Group: []BindingSpec{
					{Name: "Up", Key: "k", Command: cmd("pactl set-sink-volume @DEFAULT_SINK@ +5%"), KeepRunning: true},
					{Name: "Down", Key: "j", Command: cmd("pactl set-sink-volume @DEFAULT_SINK@ -5%"), KeepRunning: true},
					{Name: "Mute", Key: "m", Command: cmd("pactl set-sink-mute @DEFAULT_SINK@ toggle")},
				},
			},
			{Name: "Notify", Key: "n", Command: cmd(`notify-send "hello from chordbar"`)},
		},
	}
}
