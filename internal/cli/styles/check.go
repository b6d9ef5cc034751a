package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chordbar/internal/application/usecase"
)

// CheckRenderer renders the result of validating a configuration and its
// bindings.
type CheckRenderer struct {
	theme *Theme
}

// NewCheckRenderer creates a new check renderer with the given theme.
func NewCheckRenderer(theme *Theme) *CheckRenderer {
	return &CheckRenderer{theme: theme}
}

// CheckReport is what the check command found.
type CheckReport struct {
	ConfigFile   string
	BindingsFile string
	Summary      *usecase.CheckBindingsOutput
	Err          error
}

// OK reports whether the files loaded.
func (c CheckReport) OK() bool {
	return c.Err == nil && c.Summary != nil
}

// Render renders a header badge followed by the files and findings.
func (r *CheckRenderer) Render(report CheckReport) string {
	sections := []string{r.renderFiles(report)}
	switch {
	case report.Err != nil:
		sections = append(sections, r.renderError(report.Err))
	case report.Summary != nil:
		sections = append(sections, r.renderSummary(*report.Summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(report), "", strings.Join(sections, "\n\n"))
}

func (r *CheckRenderer) renderHeader(report CheckReport) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	switch {
	case !report.OK():
		statusStyle = r.theme.ErrorStyle
		statusText = "Invalid"
	case len(report.Summary.Overlaps) > 0:
		statusStyle = r.theme.WarningStyle
		statusText = "Warnings"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconKeyboard), r.theme.Title.Render("Check"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *CheckRenderer) renderFiles(report CheckReport) string {
	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Config  "), r.theme.Normal.Render(orNone(report.ConfigFile))),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Bindings"), r.theme.Normal.Render(orNone(report.BindingsFile))),
	}
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Files", r.theme.Highlight.Render(IconFolder)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *CheckRenderer) renderSummary(s usecase.CheckBindingsOutput) string {
	lines := []string{
		fmt.Sprintf("%s %s %d", r.theme.SuccessStyle.Render(IconCheck), r.theme.Subtle.Render("Nodes "), s.Nodes),
		fmt.Sprintf("%s %s %d", r.theme.SuccessStyle.Render(IconCheck), r.theme.Subtle.Render("Leaves"), s.Leaves),
		fmt.Sprintf("%s %s %d", r.theme.SuccessStyle.Render(IconCheck), r.theme.Subtle.Render("Depth "), s.Depth),
	}

	if len(s.Overlaps) > 0 {
		warnLines := make([]string, 0, len(s.Overlaps))
		for _, o := range s.Overlaps {
			warnLines = append(warnLines, fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Normal.Render(o.String())))
		}
		lines = append(lines, "", r.theme.WarningStyle.Render("Shadowed keys"), strings.Join(warnLines, "\n"))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Bindings", r.theme.Highlight.Render(IconTree)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *CheckRenderer) renderError(err error) string {
	line := fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(err.Error()))
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Errors", r.theme.ErrorStyle.Render(IconX)))
	return r.theme.Box.Render(header + "\n" + line)
}

// RenderReloading renders the line printed when a watched file changes.
func (r *CheckRenderer) RenderReloading(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s %s %s\n", iconStyle.Render(IconInfo), r.theme.Subtle.Render("changed"), path)
}

func orNone(s string) string {
	if s == "" {
		return "(defaults)"
	}
	return s
}
