package keysym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want Keysym
	}{
		{name: "lowercase letter", spec: "a", want: 0x61},
		{name: "uppercase letter", spec: "A", want: 0x41},
		{name: "digit", spec: "7", want: 0x37},
		{name: "punctuation character", spec: ",", want: 0x2c},
		{name: "latin-1 character", spec: "é", want: 0xe9},
		{name: "unicode character", spec: "λ", want: 0x010003bb},
		{name: "named key", spec: "Escape", want: Escape},
		{name: "named key any case", spec: "escape", want: Escape},
		{name: "punctuation name", spec: "comma", want: 0x2c},
		{name: "alias", spec: "Page_Up", want: 0xff55},
		{name: "function key", spec: "F12", want: 0xffc9},
		{name: "shift", spec: "Shift_R", want: ShiftR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, spec := range []string{"", "NotAKey", "\t", "ab"} {
		t.Run(spec, func(t *testing.T) {
			_, err := Parse(spec)
			assert.Error(t, err)
		})
	}
}

func TestKeysym_Name(t *testing.T) {
	assert.Equal(t, "Escape", Escape.Name())
	assert.Equal(t, "comma", Keysym(0x2c).Name())
	assert.Equal(t, "Prior", Keysym(0xff55).Name(), "first listed name is canonical")
	assert.Equal(t, "λ", Keysym(0x010003bb).Name())
	assert.Equal(t, "0xfd01", Keysym(0xfd01).Name())
}

func TestKeysym_Rune(t *testing.T) {
	r, ok := Keysym(0x61).Rune()
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	_, ok = Escape.Rune()
	assert.False(t, ok)
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "Escape")
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name   string
		legacy Keysym
		char   rune
	}{
		{"greek lamda", 0x7eb, 'λ'},
		{"greek alpha", 0x7e1, 'α'},
		{"greek OMEGA", 0x7d9, 'Ω'},
		{"greek SIGMA", 0x7d2, 'Σ'},
		{"greek final sigma", 0x7f3, 'ς'},
		{"cyrillic a", 0x6c1, 'а'},
		{"cyrillic zhe", 0x6d6, 'ж'},
		{"cyrillic ZHE", 0x6f6, 'Ж'},
		{"cyrillic hard sign", 0x6df, 'ъ'},
		{"cyrillic io", 0x6a3, 'ё'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, ok := FromRune(tt.char)
			require.True(t, ok)
			assert.Equal(t, want, Canonical(tt.legacy))
		})
	}

	assert.Equal(t, Keysym('q'), Canonical('q'))
	assert.Equal(t, Escape, Canonical(Escape))
}
