package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chordbar/internal/domain/entity"
)

// TreeRenderer renders a binding tree as an indented outline.
type TreeRenderer struct {
	theme *Theme
}

// NewTreeRenderer creates a new tree renderer with the given theme.
func NewTreeRenderer(theme *Theme) *TreeRenderer {
	return &TreeRenderer{theme: theme}
}

// Render renders every node in construction order.
func (r *TreeRenderer) Render(tree *entity.BindTree) string {
	if tree == nil {
		return r.theme.Subtle.Render("(no bindings)")
	}

	var sb strings.Builder
	tree.Walk(func(n entity.Node, depth int) bool {
		sb.WriteString(r.renderNode(n, depth))
		sb.WriteByte('\n')
		return true
	})
	return strings.TrimRight(sb.String(), "\n")
}

func (r *TreeRenderer) renderNode(n entity.Node, depth int) string {
	indent := strings.Repeat("  ", depth)
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	key := ""
	if label := n.Key().Label(); label != "" {
		key = r.theme.Key.Render(label) + " "
	}

	cmd, ok := n.Command()
	if !ok {
		return fmt.Sprintf("%s%s %s%s", indent, iconStyle.Render(IconGroup), key, r.theme.Title.Render(n.Name()))
	}

	line := fmt.Sprintf("%s%s %s%s %s",
		indent,
		iconStyle.Render(IconCommand),
		key,
		r.theme.Normal.Render(n.Name()),
		r.theme.Subtle.Render(cmd.Line()),
	)
	if cmd.KeepRunning() {
		line += " " + r.theme.WarningStyle.Render(IconRepeat)
	}
	return line
}
