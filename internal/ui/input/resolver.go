// Package input turns raw key events into menu actions relative to the
// current position in the binding tree.
package input

import (
	"context"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/domain/keysym"
	"github.com/bnema/chordbar/internal/logging"
)

// Options configures a Resolver.
type Options struct {
	// Back keys move the cursor to its parent.
	Back entity.KeySet
	// Exit keys end the session from anywhere.
	Exit entity.KeySet
	// ShiftKeycodes are the two keycodes that toggle the shift flag.
	ShiftKeycodes [2]entity.Keycode
}

// ShiftKeycodes looks up the keycodes of Shift_L and Shift_R.
func ShiftKeycodes(mapper port.KeyboardMapper) [2]entity.Keycode {
	return [2]entity.Keycode{
		mapper.KeysymToKeycode(keysym.ShiftL),
		mapper.KeysymToKeycode(keysym.ShiftR),
	}
}

// Resolver maps key events at the cursor to an entity.Action.
//
// Precedence is fixed: back keys, then exit keys, then the cursor's
// children. A key in several sets resolves to the first match.
type Resolver struct {
	mapper     port.KeyboardMapper
	back       entity.KeySet
	exit       entity.KeySet
	shiftCodes [2]entity.Keycode

	cursor  entity.Node
	index   map[keysym.Keysym]entity.Node
	shifted bool
}

// NewResolver creates a resolver with the cursor at root.
func NewResolver(mapper port.KeyboardMapper, root entity.Node, opts Options) *Resolver {
	r := &Resolver{
		mapper:     mapper,
		back:       opts.Back,
		exit:       opts.Exit,
		shiftCodes: opts.ShiftKeycodes,
	}
	r.RebindCursor(root)
	return r
}

// Cursor returns the node lookups are resolved against.
func (r *Resolver) Cursor() entity.Node {
	return r.cursor
}

// Shifted reports whether a shift key is held.
func (r *Resolver) Shifted() bool {
	return r.shifted
}

// RebindCursor moves the lookup index to node. It must be called after
// every navigation and before the next key press.
func (r *Resolver) RebindCursor(node entity.Node) {
	children := node.Children()
	index := make(map[keysym.Keysym]entity.Node, len(children))
	for _, c := range children {
		index[c.Key().Sym()] = c
	}
	r.cursor = node
	r.index = index
}

// OnKeyPress resolves a key press. Keys that match nothing yield a
// Navigate to the cursor itself, which callers treat as a no-op.
func (r *Resolver) OnKeyPress(ctx context.Context, code entity.Keycode) entity.Action {
	log := logging.FromContext(ctx)

	sym := r.mapper.KeycodeToKeysym(code, r.shifted)

	action := r.resolve(code, sym)

	log.Debug().
		Uint32("keycode", uint32(code)).
		Str("keysym", sym.Name()).
		Bool("shifted", r.shifted).
		Stringer("action", action).
		Msg("key resolved")

	return action
}

func (r *Resolver) resolve(code entity.Keycode, sym keysym.Keysym) entity.Action {
	if r.back.Contains(sym) {
		if parent, ok := r.cursor.Parent(); ok {
			return entity.Navigate{Target: parent}
		}
		return entity.Navigate{Target: r.cursor}
	}

	if r.exit.Contains(sym) {
		return entity.Exit{}
	}

	if child, ok := r.index[sym]; ok {
		if cmd, isLeaf := child.Command(); isLeaf {
			return entity.Execute{Command: cmd}
		}
		return entity.Navigate{Target: child}
	}

	if r.isShift(code) {
		r.shifted = true
	}
	return entity.Navigate{Target: r.cursor}
}

// OnKeyRelease clears the shift flag when a shift key is released.
func (r *Resolver) OnKeyRelease(code entity.Keycode) {
	if r.isShift(code) {
		r.shifted = false
	}
}

func (r *Resolver) isShift(code entity.Keycode) bool {
	if code == 0 {
		return false
	}
	return code == r.shiftCodes[0] || code == r.shiftCodes[1]
}
