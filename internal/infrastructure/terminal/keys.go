package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/domain/keysym"
)

var namedKeys = map[tea.KeyType]keysym.Keysym{
	tea.KeySpace:     keysym.Space,
	tea.KeyEsc:       keysym.Escape,
	tea.KeyEnter:     keysym.Return,
	tea.KeyBackspace: keysym.BackSpace,
	tea.KeyTab:       keysym.Tab,
	tea.KeyDelete:    keysym.Delete,
	tea.KeyInsert:    keysym.Insert,
	tea.KeyLeft:      keysym.Left,
	tea.KeyRight:     keysym.Right,
	tea.KeyUp:        keysym.Up,
	tea.KeyDown:      keysym.Down,
	tea.KeyHome:      keysym.Home,
	tea.KeyEnd:       keysym.End,
	tea.KeyPgUp:      keysym.Prior,
	tea.KeyPgDown:    keysym.Next,
}

// KeyCode converts a terminal key press to a keycode. The terminal already
// applies the keyboard layout, so keycodes carry keysym values directly.
func KeyCode(msg tea.KeyMsg) (entity.Keycode, bool) {
	if msg.Alt {
		return 0, false
	}
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return 0, false
		}
		sym, ok := keysym.FromRune(msg.Runes[0])
		return entity.Keycode(sym), ok
	}
	// Function key types count down from KeyF1.
	if msg.Type <= tea.KeyF1 && msg.Type >= tea.KeyF20 {
		return entity.Keycode(keysym.F1 + keysym.Keysym(tea.KeyF1-msg.Type)), true
	}
	if sym, ok := namedKeys[msg.Type]; ok {
		return entity.Keycode(sym), true
	}
	return 0, false
}

// IdentityMapper implements port.KeyboardMapper for keycodes that already
// are keysyms. Shift state is ignored since the terminal reports shifted
// characters itself.
type IdentityMapper struct{}

var _ port.KeyboardMapper = IdentityMapper{}

// KeycodeToKeysym implements port.KeyboardMapper.
func (IdentityMapper) KeycodeToKeysym(code entity.Keycode, _ bool) keysym.Keysym {
	return keysym.Keysym(code)
}

// KeysymToKeycode implements port.KeyboardMapper.
func (IdentityMapper) KeysymToKeycode(sym keysym.Keysym) entity.Keycode {
	return entity.Keycode(sym)
}
