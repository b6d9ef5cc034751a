package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/domain/keysym"
)

// keymapColumns is how many keysym columns are searched when mapping a
// keysym back to a keycode.
const keymapColumns = 4

// keymap answers keycode/keysym questions from a keysym table.
type keymap struct {
	get    func(code xproto.Keycode, column byte) xproto.Keysym
	lo, hi xproto.Keycode
}

var _ port.KeyboardMapper = keymap{}

func newKeymap(xu *xgbutil.XUtil) keymap {
	lo, hi := keycodeRange(xu.Setup())
	return keymap{
		get: func(code xproto.Keycode, column byte) xproto.Keysym {
			return keybind.KeysymGet(xu, code, column)
		},
		lo: lo,
		hi: hi,
	}
}

// keycodeRange is the keycode range the server announced at connection
// setup.
func keycodeRange(setup *xproto.SetupInfo) (lo, hi xproto.Keycode) {
	if setup == nil {
		return 0, 0
	}
	return setup.MinKeycode, setup.MaxKeycode
}

// KeycodeToKeysym implements port.KeyboardMapper. Column 0 is the unshifted
// symbol and column 1 the shifted one; a key with no shifted symbol yields
// its unshifted one. Legacy Cyrillic and Greek keysyms come back in their
// Unicode form.
func (k keymap) KeycodeToKeysym(code entity.Keycode, shifted bool) keysym.Keysym {
	if code < entity.Keycode(k.lo) || code > entity.Keycode(k.hi) {
		return keysym.NoSymbol
	}
	kc := xproto.Keycode(code)
	if shifted {
		if sym := k.get(kc, 1); sym != 0 {
			return keysym.Canonical(keysym.Keysym(sym))
		}
	}
	return keysym.Canonical(keysym.Keysym(k.get(kc, 0)))
}

// KeysymToKeycode implements port.KeyboardMapper. Lower columns win, then
// lower keycodes.
func (k keymap) KeysymToKeycode(sym keysym.Keysym) entity.Keycode {
	if sym == keysym.NoSymbol {
		return 0
	}
	sym = keysym.Canonical(sym)
	for column := byte(0); column < keymapColumns; column++ {
		for code := int(k.lo); code <= int(k.hi); code++ {
			if keysym.Canonical(keysym.Keysym(k.get(xproto.Keycode(code), column))) == sym {
				return entity.Keycode(code)
			}
		}
	}
	return 0
}
