// Package keysym resolves X11 key symbol names and characters to keysym values.
//
// The table is static so that key specs in the bindings file can be validated
// without a display connection.
package keysym

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Keysym is an X11 key symbol value.
type Keysym uint32

// NoSymbol is the keysym reported for keycodes without a mapping.
const NoSymbol Keysym = 0

// unicodeOffset is added to code points outside Latin-1 (X11 "Unicode keysyms").
const unicodeOffset Keysym = 0x01000000

// Frequently referenced keysyms.
const (
	BackSpace Keysym = 0xff08
	Tab       Keysym = 0xff09
	Return    Keysym = 0xff0d
	Escape    Keysym = 0xff1b
	Home      Keysym = 0xff50
	Left      Keysym = 0xff51
	Up        Keysym = 0xff52
	Right     Keysym = 0xff53
	Down      Keysym = 0xff54
	Prior     Keysym = 0xff55
	Next      Keysym = 0xff56
	End       Keysym = 0xff57
	Insert    Keysym = 0xff63
	F1        Keysym = 0xffbe
	Delete    Keysym = 0xffff
	ShiftL    Keysym = 0xffe1
	ShiftR    Keysym = 0xffe2
	Space     Keysym = 0x0020
)

// Parse resolves a key spec: either a single printable character or a
// keysym name such as "Escape" or "comma".
func Parse(spec string) (Keysym, error) {
	if spec == "" {
		return NoSymbol, fmt.Errorf("empty key spec")
	}

	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		if sym, ok := FromRune(r); ok {
			return sym, nil
		}
		return NoSymbol, fmt.Errorf("key %q is not a printable character", spec)
	}

	if sym, ok := byName[spec]; ok {
		return sym, nil
	}
	if sym, ok := byLowerName[strings.ToLower(spec)]; ok {
		return sym, nil
	}
	return NoSymbol, fmt.Errorf("unknown key name %q", spec)
}

// FromRune maps a printable character to its keysym.
func FromRune(r rune) (Keysym, bool) {
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return NoSymbol, false
	}
	if (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff) {
		return Keysym(r), true
	}
	return unicodeOffset | Keysym(r), true
}

// Rune returns the printable character for sym, if any.
func (s Keysym) Rune() (rune, bool) {
	switch {
	case (s >= 0x20 && s <= 0x7e) || (s >= 0xa0 && s <= 0xff):
		return rune(s), true
	case s > unicodeOffset && s <= unicodeOffset|0x10ffff:
		return rune(s - unicodeOffset), true
	}
	return 0, false
}

// Name returns the canonical keysym name, or a hex form for unknown values.
func (s Keysym) Name() string {
	if name, ok := byValue[s]; ok {
		return name
	}
	if r, ok := s.Rune(); ok {
		return string(r)
	}
	return fmt.Sprintf("0x%x", uint32(s))
}

// String implements fmt.Stringer.
func (s Keysym) String() string {
	return s.Name()
}

// Names returns every known keysym name, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	byName      map[string]Keysym
	byLowerName map[string]Keysym
	byValue     map[Keysym]string
)

// The first name listed for a value is its canonical name.
func init() {
	byName = make(map[string]Keysym, len(table))
	byLowerName = make(map[string]Keysym, len(table))
	byValue = make(map[Keysym]string, len(table))
	for _, e := range table {
		byName[e.name] = e.sym
		lower := strings.ToLower(e.name)
		if _, taken := byLowerName[lower]; !taken {
			byLowerName[lower] = e.sym
		}
		if _, taken := byValue[e.sym]; !taken {
			byValue[e.sym] = e.name
		}
	}
}
