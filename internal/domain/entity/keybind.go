// Package entity contains domain entities representing core concepts of the
// keychord menu. These entities are pure Go types with no infrastructure
// dependencies.
package entity

import (
	"sort"
	"strings"

	"github.com/bnema/chordbar/internal/domain/keysym"
)

// Keycode identifies a physical key as reported by the input device.
type Keycode uint32

// Keybind is a logical key: a display label and its resolved keysym.
// Two keybinds are equal when their keysyms are equal.
type Keybind struct {
	label string
	sym   keysym.Keysym
}

// ParseKeybind resolves a key spec (single character or keysym name).
func ParseKeybind(spec string) (Keybind, error) {
	sym, err := keysym.Parse(spec)
	if err != nil {
		return Keybind{}, err
	}
	return Keybind{label: spec, sym: sym}, nil
}

// KeybindFromSym builds a keybind from a keysym, labelled with its name.
func KeybindFromSym(sym keysym.Keysym) Keybind {
	return Keybind{label: sym.Name(), sym: sym}
}

// Label returns the human-readable label.
func (k Keybind) Label() string {
	return k.label
}

// Sym returns the keysym.
func (k Keybind) Sym() keysym.Keysym {
	return k.sym
}

// Equal reports whether both keybinds resolve to the same keysym.
func (k Keybind) Equal(other Keybind) bool {
	return k.sym == other.sym
}

// String implements fmt.Stringer.
func (k Keybind) String() string {
	return k.label
}

// KeySet is a set of keybinds compared by keysym.
type KeySet map[keysym.Keysym]Keybind

// NewKeySet builds a set from keybinds; later duplicates keep the first label.
func NewKeySet(keys ...Keybind) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		if _, ok := set[k.sym]; !ok {
			set[k.sym] = k
		}
	}
	return set
}

// ParseKeySet resolves every spec into a set.
func ParseKeySet(specs []string) (KeySet, error) {
	keys := make([]Keybind, 0, len(specs))
	for _, spec := range specs {
		k, err := ParseKeybind(spec)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return NewKeySet(keys...), nil
}

// Contains reports whether sym is in the set.
func (s KeySet) Contains(sym keysym.Keysym) bool {
	_, ok := s[sym]
	return ok
}

// Labels returns the set's labels, sorted and joined for display.
func (s KeySet) Labels() string {
	labels := make([]string, 0, len(s))
	for _, k := range s {
		labels = append(labels, k.label)
	}
	sort.Strings(labels)
	return strings.Join(labels, ", ")
}
