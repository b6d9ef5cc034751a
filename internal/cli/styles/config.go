package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// PathInfo is one labelled location printed by "config path".
type PathInfo struct {
	Label  string
	Path   string
	Exists bool
}

// RenderPaths renders the resolved file locations.
func (r *ConfigRenderer) RenderPaths(paths []PathInfo) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	width := 0
	for _, p := range paths {
		width = max(width, len(p.Label))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, p := range paths {
		status := ""
		if !p.Exists {
			status = " " + r.theme.Subtle.Render("(missing)")
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s%s\n",
			iconStyle.Render(IconConfig),
			r.theme.Subtle.Render(fmt.Sprintf("%-*s", width, p.Label)),
			r.theme.Normal.Render(p.Path),
			status,
		))
	}
	return sb.String()
}

// RenderWritten renders the list of files a command created.
func (r *ConfigRenderer) RenderWritten(files []string) string {
	if len(files) == 0 {
		return fmt.Sprintf(
			"\n  %s %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconInfo),
			r.theme.Subtle.Render("Nothing written, files already exist (use --force to overwrite)."),
		)
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	var sb strings.Builder
	sb.WriteString("\n")
	for _, f := range files {
		sb.WriteString(fmt.Sprintf("  %s Wrote %s %s\n",
			iconStyle.Render(IconCheck),
			r.theme.Highlight.Render(filepath.Base(f)),
			r.theme.Subtle.Render(filepath.Dir(f)),
		))
	}
	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderInitHint renders a hint to create the default files.
func (r *ConfigRenderer) RenderInitHint() string {
	return fmt.Sprintf(
		"\n  %s\n",
		r.theme.Subtle.Render("Run 'chordbar config init' to write the default config and bindings."),
	)
}
