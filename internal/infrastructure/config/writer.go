package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ErrFileExists is returned by WriteDefaultFiles when a target exists and
// force is false.
var ErrFileExists = errors.New("file already exists")

// WriteDefaultFiles writes config.toml with every default and an example
// bindings.json into dir. Existing files are kept unless force is set.
func WriteDefaultFiles(dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(dir, "config.toml")
	bindingsFile := filepath.Join(dir, defaultBindingsFile)

	if !force {
		for _, path := range []string{configFile, bindingsFile} {
			if _, err := os.Stat(path); err == nil {
				return nil, fmt.Errorf("%s: %w (use --force to overwrite)", path, ErrFileExists)
			}
		}
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetConfigType("toml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	data, err := json.MarshalIndent(ExampleBindings(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal example bindings: %w", err)
	}
	if err := os.WriteFile(bindingsFile, append(data, '\n'), filePerm); err != nil {
		return nil, fmt.Errorf("failed to write bindings file: %w", err)
	}

	return []string{configFile, bindingsFile}, nil
}
