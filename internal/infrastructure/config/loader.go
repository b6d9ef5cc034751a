package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading.
type Manager struct {
	config   *Config
	viper    *viper.Viper
	explicit string
	mu       sync.RWMutex
}

// NewManager creates a configuration manager. configFile overrides the
// search for config.{toml,yaml,json} in the XDG config directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config") // Any supported extension
		v.AddConfigPath(configDir)
	}

	// Set up environment variable support
	// (e.g. CHORDBAR_SHELL, CHORDBAR_DISPLAY_BAR_HEIGHT_IN_PIXELS).
	v.SetEnvPrefix("CHORDBAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "CHORDBAR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CHORDBAR_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CHORDBAR_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CHORDBAR_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:    v,
		explicit: configFile,
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing file in the default location is not an error; a missing explicit
// file is.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if errors.As(err, &configFileNotFoundError) && m.explicit == "" {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile = m.explicit
	}
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config file not found at %s", configFile)
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Shell = strings.TrimSpace(config.Shell)
	config.BindingsFile = strings.TrimSpace(config.BindingsFile)
	config.Font.Path = strings.TrimSpace(config.Font.Path)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.ActionKeys.Back = append([]string(nil), m.config.ActionKeys.Back...)
	configCopy.ActionKeys.Exit = append([]string(nil), m.config.ActionKeys.Exit...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used, or
// "" when running on defaults.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// ConfigDir is the directory relative paths in the configuration resolve
// against: the directory of the file in use, else the XDG config directory.
func (m *Manager) ConfigDir() (string, error) {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return filepath.Dir(used), nil
	}
	if m.explicit != "" {
		return filepath.Dir(m.explicit), nil
	}
	return GetConfigDir()
}

// BindingsPath returns the absolute path of the bindings file.
func (m *Manager) BindingsPath() (string, error) {
	cfg := m.Get()
	if cfg == nil {
		return "", fmt.Errorf("configuration not loaded")
	}
	return m.ResolvePath(cfg.BindingsFile)
}

// ResolvePath expands "~/" and makes path absolute relative to the config
// directory.
func (m *Manager) ResolvePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dir, err := m.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, path), nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	setDefaults(m.viper, DefaultConfig())
}

func setDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("bindings_file", defaults.BindingsFile)
	v.SetDefault("shell", defaults.Shell)
	v.SetDefault("separator", defaults.Separator)

	v.SetDefault("action_keys.back", defaults.ActionKeys.Back)
	v.SetDefault("action_keys.exit", defaults.ActionKeys.Exit)

	v.SetDefault("display.bar_height_in_pixels", defaults.Display.BarHeight)
	v.SetDefault("display.border_size_in_pixels", defaults.Display.BorderSize)
	v.SetDefault("display.initial_padding_in_pixels", defaults.Display.InitialPadding)
	v.SetDefault("display.padding_in_pixels", defaults.Display.Padding)
	v.SetDefault("display.skip_in_pixels", defaults.Display.Skip)

	v.SetDefault("color.background", defaults.Color.Background)
	v.SetDefault("color.border", defaults.Color.Border)
	v.SetDefault("color.separator", defaults.Color.Separator)
	v.SetDefault("color.key", defaults.Color.Key)
	v.SetDefault("color.text", defaults.Color.Text)

	v.SetDefault("font.name", defaults.Font.Name)
	v.SetDefault("font.style", defaults.Font.Style)
	v.SetDefault("font.size", defaults.Font.Size)
	v.SetDefault("font.path", defaults.Font.Path)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}
