package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const (
	ConfigSchemaFile   = "config.schema.json"
	BindingsSchemaFile = "bindings.schema.json"
)

// ConfigSchema returns the JSON schema of the configuration file.
func ConfigSchema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/chordbar/config.schema.json"
	schema.Title = "chordbar configuration"
	schema.Description = "Bar appearance, action keys and logging for chordbar"
	return schema
}

// BindingsSchema returns the JSON schema of the bindings file.
func BindingsSchema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&BindingSpec{})

	schema.ID = "https://github.com/bnema/chordbar/bindings.schema.json"
	schema.Title = "chordbar bindings"
	schema.Description = "Keychord tree: every node has a name, a key and either a command or a group"
	return schema
}

// WriteSchemas writes both schemas into dir and returns the written paths.
func WriteSchemas(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create schema directory: %w", err)
	}

	files := []struct {
		name   string
		schema *jsonschema.Schema
	}{
		{ConfigSchemaFile, ConfigSchema()},
		{BindingsSchemaFile, BindingsSchema()},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		data, err := json.MarshalIndent(f.schema, "", "  ")
		if err != nil {
			return written, fmt.Errorf("failed to marshal %s: %w", f.name, err)
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, data, filePerm); err != nil {
			return written, fmt.Errorf("failed to write schema file: %w", err)
		}
		written = append(written, path)
	}
	return written, nil
}
