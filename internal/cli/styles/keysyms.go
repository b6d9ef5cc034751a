package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/chordbar/internal/domain/keysym"
)

// KeysymRenderer renders keysym names as a table.
type KeysymRenderer struct {
	theme *Theme
}

// NewKeysymRenderer creates a new keysym renderer with the given theme.
func NewKeysymRenderer(theme *Theme) *KeysymRenderer {
	return &KeysymRenderer{theme: theme}
}

// Render renders one row per name with its value and printable form.
func (r *KeysymRenderer) Render(names []string) string {
	if len(names) == 0 {
		return r.theme.Subtle.Render("no matching keysyms")
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		sym, err := keysym.Parse(name)
		if err != nil {
			continue
		}
		char := ""
		if ru, ok := sym.Rune(); ok {
			char = string(ru)
		}
		rows = append(rows, []string{name, fmt.Sprintf("0x%04x", uint32(sym)), char})
	}

	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(r.theme.Text).Padding(0, 1)
	valueStyle := cellStyle.Foreground(r.theme.Muted)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("NAME", "VALUE", "CHAR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return valueStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}
