package port

import (
	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/domain/keysym"
)

// KeyboardMapper translates between physical keycodes and keysyms for the
// current keyboard layout. Implementations must be deterministic for a fixed
// layout.
type KeyboardMapper interface {
	// KeycodeToKeysym returns the keysym produced by code, using the shifted
	// column when shifted is true. Unmapped codes yield keysym.NoSymbol.
	KeycodeToKeysym(code entity.Keycode, shifted bool) keysym.Keysym

	// KeysymToKeycode returns the first keycode producing sym, or 0.
	KeysymToKeycode(sym keysym.Keysym) entity.Keycode
}
