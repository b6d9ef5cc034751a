package config

const (
	defaultBindingsFile = "bindings.json"
	defaultSeparator    = ":"
)

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		BindingsFile: defaultBindingsFile,
		Shell:        "",
		Separator:    defaultSeparator,
		ActionKeys: ActionKeysConfig{
			Back: []string{"h", "Left"},
			Exit: []string{"q", "Escape"},
		},
		Display: DisplayConfig{
			BarHeight:      20,
			BorderSize:     1,
			InitialPadding: 50,
			Padding:        5,
			Skip:           10,
		},
		Color: ColorConfig{
			Background: "#55bbff",
			Border:     "#ffffff",
			Separator:  "#ffff00",
			Key:        "#ff0000",
			Text:       "#00ff00",
		},
		Font: FontConfig{
			Name:  "UbuntuMono",
			Style: "Bold",
			Size:  12,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			File:       false,
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}
