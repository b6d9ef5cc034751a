package config

import (
	"fmt"
	"strings"

	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateBindingsFile(config)...)
	validationErrors = append(validationErrors, validateActionKeys(config)...)
	validationErrors = append(validationErrors, validateDisplay(config)...)
	validationErrors = append(validationErrors, validateColors(config)...)
	validationErrors = append(validationErrors, validateFont(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateBindingsFile(config *Config) []string {
	if config.BindingsFile == "" {
		return []string{"bindings_file must not be empty"}
	}
	return nil
}

func validateActionKeys(config *Config) []string {
	var validationErrors []string
	check := func(name string, keys []string) {
		if len(keys) == 0 {
			validationErrors = append(validationErrors, name+" must list at least one key")
		}
		for _, k := range keys {
			if _, err := entity.ParseKeybind(k); err != nil {
				validationErrors = append(validationErrors, fmt.Sprintf("%s: %v", name, err))
			}
		}
	}
	check("action_keys.back", config.ActionKeys.Back)
	check("action_keys.exit", config.ActionKeys.Exit)
	return validationErrors
}

func validateDisplay(config *Config) []string {
	var validationErrors []string
	d := config.Display
	if d.BarHeight < 1 {
		validationErrors = append(validationErrors, "display.bar_height_in_pixels must be at least 1")
	}
	nonNegative := []struct {
		name  string
		value int
	}{
		{"display.border_size_in_pixels", d.BorderSize},
		{"display.initial_padding_in_pixels", d.InitialPadding},
		{"display.padding_in_pixels", d.Padding},
		{"display.skip_in_pixels", d.Skip},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			validationErrors = append(validationErrors, f.name+" must be non-negative")
		}
	}
	return validationErrors
}

func validateColors(config *Config) []string {
	var validationErrors []string
	colors := []struct {
		name  string
		value string
	}{
		{"color.background", config.Color.Background},
		{"color.border", config.Color.Border},
		{"color.separator", config.Color.Separator},
		{"color.key", config.Color.Key},
		{"color.text", config.Color.Text},
	}
	for _, c := range colors {
		if _, err := ParseColor(c.value); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: %v", c.name, err))
		}
	}
	return validationErrors
}

func validateFont(config *Config) []string {
	var validationErrors []string
	if config.Font.Size <= 0 || config.Font.Size > 200 {
		validationErrors = append(validationErrors, "font.size must be between 0 (exclusive) and 200")
	}
	if config.Font.Path == "" && config.Font.Name == "" {
		validationErrors = append(validationErrors, "font.name must not be empty when font.path is not set")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, "logging.level: "+err.Error())
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json, got %q", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}
