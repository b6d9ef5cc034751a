package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/domain/keysym"
)

// usKeymap is a small slice of a US layout core keymap.
func usKeymap() keymap {
	table := map[xproto.Keycode][]xproto.Keysym{
		9:   {0xff1b, 0, 0xff1b}, // Escape
		10:  {'1', '!'},
		24:  {'q', 'Q'},
		43:  {'h', 'H'},
		50:  {0xffe1}, // Shift_L
		59:  {',', '<'},
		62:  {0xffe2}, // Shift_R
		65:  {' '},
		94:  {'<', '>'},
		113: {0xff51}, // Left
		130: {0x6c6, 0x6e6}, // Cyrillic_ef, Cyrillic_EF
		131: {0x7eb, 0x7cb}, // Greek_lamda, Greek_LAMDA
	}
	return keymap{
		get: func(code xproto.Keycode, column byte) xproto.Keysym {
			syms := table[code]
			if int(column) >= len(syms) {
				return 0
			}
			return syms[column]
		},
		lo: 8,
		hi: 255,
	}
}

func TestKeymap_KeycodeToKeysym(t *testing.T) {
	km := usKeymap()

	tests := []struct {
		name    string
		code    entity.Keycode
		shifted bool
		want    keysym.Keysym
	}{
		{"letter", 24, false, 'q'},
		{"shifted letter", 24, true, 'Q'},
		{"shifted digit", 10, true, '!'},
		{"named key", 113, false, keysym.Left},
		{"no shifted column falls back", 9, true, keysym.Escape},
		{"single column shifted", 65, true, keysym.Space},
		{"unmapped code", 200, false, keysym.NoSymbol},
		{"below range", 3, false, keysym.NoSymbol},
		{"above range", 300, false, keysym.NoSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.KeycodeToKeysym(tt.code, tt.shifted))
		})
	}
}

func TestKeymap_KeysymToKeycode(t *testing.T) {
	km := usKeymap()

	assert.Equal(t, entity.Keycode(50), km.KeysymToKeycode(keysym.ShiftL))
	assert.Equal(t, entity.Keycode(62), km.KeysymToKeycode(keysym.ShiftR))
	assert.Equal(t, entity.Keycode(43), km.KeysymToKeycode('h'))
	// Column 1 is searched after column 0.
	assert.Equal(t, entity.Keycode(43), km.KeysymToKeycode('H'))
	// '<' is column 0 of 94 and column 1 of 59: column 0 wins.
	assert.Equal(t, entity.Keycode(94), km.KeysymToKeycode('<'))
	assert.Equal(t, entity.Keycode(0), km.KeysymToKeycode('z'))
	assert.Equal(t, entity.Keycode(0), km.KeysymToKeycode(keysym.NoSymbol))
}

func TestKeycodeRange(t *testing.T) {
	lo, hi := keycodeRange(&xproto.SetupInfo{MinKeycode: 8, MaxKeycode: 255})
	assert.Equal(t, xproto.Keycode(8), lo)
	assert.Equal(t, xproto.Keycode(255), hi)

	lo, hi = keycodeRange(nil)
	assert.Zero(t, lo)
	assert.Zero(t, hi)

	// An empty range maps nothing.
	k := usKeymap()
	k.lo, k.hi = keycodeRange(nil)
	assert.Equal(t, keysym.NoSymbol, k.KeycodeToKeysym(24, false))
}

func TestKeymap_LegacyKeysymsUseUnicodeForm(t *testing.T) {
	k := usKeymap()
	lamda, _ := keysym.FromRune('λ')
	bigLamda, _ := keysym.FromRune('Λ')
	ef, _ := keysym.FromRune('ф')

	assert.Equal(t, lamda, k.KeycodeToKeysym(131, false))
	assert.Equal(t, bigLamda, k.KeycodeToKeysym(131, true))
	assert.Equal(t, ef, k.KeycodeToKeysym(130, false))

	assert.Equal(t, entity.Keycode(131), k.KeysymToKeycode(lamda))
	assert.Equal(t, entity.Keycode(131), k.KeysymToKeycode(0x7eb))
}
