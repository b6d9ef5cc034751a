package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chordbar/internal/application/port"
)

type itemsMsg struct{ items []port.BarItem }

type drawMsg struct{}

type outputMsg struct{ line string }

// keyMap describes the keys shown in the help line. Back and Exit are
// resolved by the bar itself; only Quit is handled by the terminal.
type keyMap struct {
	Back key.Binding
	Exit key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Exit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap(back, exit []string) keyMap {
	km := keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
	if len(back) > 0 {
		km.Back = key.NewBinding(
			key.WithKeys(back...),
			key.WithHelp(strings.Join(back, "/"), "back"),
		)
	}
	if len(exit) > 0 {
		km.Exit = key.NewBinding(
			key.WithKeys(exit...),
			key.WithHelp(strings.Join(exit, "/"), "exit"),
		)
	}
	return km
}

type model struct {
	session *Session

	separator string
	width     int
	keys      keyMap
	help      help.Model

	items  []port.BarItem
	output []string
	draws  int

	bar  lipgloss.Style
	key  lipgloss.Style
	sep  lipgloss.Style
	text lipgloss.Style
}

func newModel(s *Session, opts Options) model {
	bg := opts.Colors.Background
	base := lipgloss.NewStyle().Background(bg)
	return model{
		session:   s,
		separator: opts.Separator,
		keys:      newKeyMap(opts.BackKeys, opts.ExitKeys),
		help:      help.New(),
		bar:       base.Padding(0, 1),
		key:       base.Foreground(opts.Colors.Key).Bold(true),
		sep:       base.Foreground(opts.Colors.Separator),
		text:      base.Foreground(opts.Colors.Text),
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.session.interrupt()
			return m, tea.Quit
		}
		if code, ok := KeyCode(msg); ok {
			m.session.push(port.KeyPressEvent{Code: code})
			m.session.push(port.KeyReleaseEvent{Code: code})
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case itemsMsg:
		m.items = msg.items
	case drawMsg:
		m.draws++
	case outputMsg:
		m.output = append(m.output, msg.line)
		if len(m.output) > maxOutputLines {
			m.output = m.output[len(m.output)-maxOutputLines:]
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	space := m.bar.UnsetPadding().Render(" ")
	entries := make([]string, 0, len(m.items))
	for _, item := range m.items {
		entries = append(entries,
			m.key.Render(item.Key)+space+m.sep.Render(m.separator)+space+m.text.Render(item.Label))
	}

	bar := m.bar
	if m.width > 0 {
		bar = bar.Width(m.width)
	}

	var b strings.Builder
	b.WriteString(bar.Render(strings.Join(entries, space+space+space)))
	b.WriteString("\n")
	for _, line := range m.output {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
