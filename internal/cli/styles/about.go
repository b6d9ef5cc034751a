package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chordbar/internal/domain/build"
)

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// AboutInfo is what the about screen shows next to the build info.
type AboutInfo struct {
	Build        build.Info
	ConfigFile   string
	BindingsFile string
	// Bindings is the number of commands in the tree, or -1 when the
	// bindings file could not be loaded.
	Bindings int
}

// Render renders build info with ASCII logo and styled info lines.
func (r *AboutRenderer) Render(info AboutInfo) string {
	logo := r.renderLogo()
	lines := r.renderInfoLines(info)

	// Combine horizontally: logo | info
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", lines)
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	// A key cap
	logo := `▄██████▄
██    ▀▀
██
██    ▄▄
▀██████▀`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(about AboutInfo) string {
	info := about.Build
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), keyStyle.Render("Version"), valStyle.Render(info.Version)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGitBranch), keyStyle.Render("Commit"), valStyle.Render(info.Commit)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconCalendar), keyStyle.Render("Built"), valStyle.Render(info.BuildDate)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGo), keyStyle.Render("Go"), valStyle.Render(info.GoVersion)),
		"",
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconConfig), keyStyle.Render("Config"), valStyle.Render(orNone(about.ConfigFile))),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconKeyboard), keyStyle.Render("Bindings"), valStyle.Render(bindingsLine(about))),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		fmt.Sprintf(
			"%s %s %s",
			iconStyle.Render(IconHeart),
			keyStyle.Render("Made by"),
			valStyle.Render(strings.Join(build.Contributors(), ", ")),
		),
	}

	return strings.Join(lines, "\n")
}

func bindingsLine(about AboutInfo) string {
	switch {
	case about.BindingsFile == "":
		return "(not found)"
	case about.Bindings < 0:
		return about.BindingsFile + " (invalid)"
	default:
		return fmt.Sprintf("%s (%d commands)", about.BindingsFile, about.Bindings)
	}
}
