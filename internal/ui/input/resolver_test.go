package input_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chordbar/internal/application/port/mocks"
	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/domain/keysym"
	"github.com/bnema/chordbar/internal/ui/input"
)

// Keycodes of a US layout.
const (
	codeEscape entity.Keycode = 9
	codeQ      entity.Keycode = 24
	codeA      entity.Keycode = 38
	codeH      entity.Keycode = 43
	codeShiftL entity.Keycode = 50
	codeZ      entity.Keycode = 52
	codeB      entity.Keycode = 56
	codeC      entity.Keycode = 54
	codeShiftR entity.Keycode = 62
)

var usLayout = map[entity.Keycode][2]keysym.Keysym{
	codeEscape: {keysym.Escape, keysym.Escape},
	codeQ:      {'q', 'Q'},
	codeA:      {'a', 'A'},
	codeH:      {'h', 'H'},
	codeShiftL: {keysym.ShiftL, keysym.ShiftL},
	codeZ:      {'z', 'Z'},
	codeB:      {'b', 'B'},
	codeC:      {'c', 'C'},
	codeShiftR: {keysym.ShiftR, keysym.ShiftR},
}

func newMapper(t *testing.T) *mocks.MockKeyboardMapper {
	m := mocks.NewMockKeyboardMapper(t)
	m.EXPECT().KeycodeToKeysym(mock.Anything, mock.Anything).
		RunAndReturn(func(code entity.Keycode, shifted bool) keysym.Keysym {
			syms, ok := usLayout[code]
			if !ok {
				return keysym.NoSymbol
			}
			if shifted {
				return syms[1]
			}
			return syms[0]
		}).Maybe()
	return m
}

func leaf(name, key, line string) entity.NodeSpec {
	return entity.NodeSpec{Name: name, Key: key, Command: &entity.CommandSpec{Line: line}}
}

func group(name, key string, children ...entity.NodeSpec) entity.NodeSpec {
	return entity.NodeSpec{Name: name, Key: key, Group: children}
}

func build(t *testing.T, spec entity.NodeSpec) *entity.BindTree {
	t.Helper()
	tree, err := entity.BuildTree(spec, entity.BuildOptions{})
	require.NoError(t, err)
	return tree
}

func keys(t *testing.T, specs ...string) entity.KeySet {
	t.Helper()
	set, err := entity.ParseKeySet(specs)
	require.NoError(t, err)
	return set
}

func newResolver(t *testing.T, tree *entity.BindTree) *input.Resolver {
	return input.NewResolver(newMapper(t), tree.Root(), input.Options{
		Back:          keys(t, "h", "Left"),
		Exit:          keys(t, "q", "Escape"),
		ShiftKeycodes: [2]entity.Keycode{codeShiftL, codeShiftR},
	})
}

func TestResolver_ExecuteLeaf(t *testing.T) {
	tree := build(t, group("root", "", leaf("Hello", "a", "notify-send hi")))
	r := newResolver(t, tree)

	action := r.OnKeyPress(context.Background(), codeA)

	exec, ok := action.(entity.Execute)
	require.True(t, ok, "got %s", action)
	assert.Equal(t, [][]string{{"notify-send", "hi"}}, exec.Command.Subcommands())
	assert.False(t, exec.Command.KeepRunning())
}

func TestResolver_NavigateThenExecute(t *testing.T) {
	tree := build(t, group("root", "",
		group("Apps", "a", leaf("Firefox", "b", "firefox")),
	))
	r := newResolver(t, tree)
	ctx := context.Background()

	action := r.OnKeyPress(ctx, codeA)
	nav, ok := action.(entity.Navigate)
	require.True(t, ok, "got %s", action)
	assert.Equal(t, "Apps", nav.Target.Name())
	assert.False(t, nav.Target == r.Cursor())

	r.RebindCursor(nav.Target)

	action = r.OnKeyPress(ctx, codeB)
	exec, ok := action.(entity.Execute)
	require.True(t, ok, "got %s", action)
	assert.Equal(t, [][]string{{"firefox"}}, exec.Command.Subcommands())
}

func TestResolver_BackAtRootIsSelf(t *testing.T) {
	tree := build(t, group("root", "", leaf("Hello", "a", "true")))
	r := newResolver(t, tree)

	action := r.OnKeyPress(context.Background(), codeH)

	nav, ok := action.(entity.Navigate)
	require.True(t, ok, "got %s", action)
	assert.True(t, nav.Target == tree.Root())
	assert.True(t, nav.Target == r.Cursor())
}

func TestResolver_BackToParent(t *testing.T) {
	tree := build(t, group("root", "",
		group("Apps", "a", group("Editors", "b", leaf("Vim", "c", "vim"))),
	))
	r := newResolver(t, tree)
	ctx := context.Background()

	apps, err := tree.Root().ChildAt(mustKey(t, "a"))
	require.NoError(t, err)
	editors, err := apps.ChildAt(mustKey(t, "b"))
	require.NoError(t, err)
	r.RebindCursor(editors)

	nav, ok := r.OnKeyPress(ctx, codeH).(entity.Navigate)
	require.True(t, ok)
	assert.True(t, nav.Target == apps)
}

func TestResolver_UnmappedKeyIsSelf(t *testing.T) {
	tree := build(t, group("root", "",
		group("Apps", "a", leaf("One", "a", "one"), leaf("Two", "b", "two")),
	))
	r := newResolver(t, tree)
	apps, err := tree.Root().ChildAt(mustKey(t, "a"))
	require.NoError(t, err)
	r.RebindCursor(apps)

	for _, code := range []entity.Keycode{codeZ, 200} {
		nav, ok := r.OnKeyPress(context.Background(), code).(entity.Navigate)
		require.True(t, ok)
		assert.True(t, nav.Target == apps)
	}
	assert.False(t, r.Shifted())
}

func TestResolver_ExitFromAnywhere(t *testing.T) {
	tree := build(t, group("root", "",
		group("Apps", "a", group("More", "b", leaf("Deep", "c", "deep"))),
	))
	r := newResolver(t, tree)

	tree.Walk(func(n entity.Node, _ int) bool {
		if n.IsLeaf() {
			return true
		}
		r.RebindCursor(n)
		for _, code := range []entity.Keycode{codeQ, codeEscape} {
			assert.Equal(t, entity.Exit{}, r.OnKeyPress(context.Background(), code), "at %s", n)
		}
		return true
	})
}

func TestResolver_LookupsFollowCursor(t *testing.T) {
	tree := build(t, group("root", "",
		group("Apps", "a", leaf("Browser", "b", "firefox")),
		leaf("Clock", "c", "date"),
	))
	r := newResolver(t, tree)
	ctx := context.Background()

	apps, ok := r.OnKeyPress(ctx, codeA).(entity.Navigate)
	require.True(t, ok)
	r.RebindCursor(apps.Target)

	// "c" is bound at the root only.
	nav, ok := r.OnKeyPress(ctx, codeC).(entity.Navigate)
	require.True(t, ok)
	assert.True(t, nav.Target == apps.Target)

	_, ok = r.OnKeyPress(ctx, codeB).(entity.Execute)
	assert.True(t, ok)

	// Back at the root, "b" is no longer bound.
	r.RebindCursor(tree.Root())
	nav, ok = r.OnKeyPress(ctx, codeB).(entity.Navigate)
	require.True(t, ok)
	assert.True(t, nav.Target == tree.Root())
}

func TestResolver_ShiftChangesTranslation(t *testing.T) {
	tree := build(t, group("root", "", leaf("Upper", "A", "upper")))
	r := newResolver(t, tree)
	ctx := context.Background()

	nav, ok := r.OnKeyPress(ctx, codeA).(entity.Navigate)
	require.True(t, ok, "unshifted 'a' is not bound")
	assert.True(t, nav.Target == tree.Root())

	r.OnKeyPress(ctx, codeShiftL)
	assert.True(t, r.Shifted())

	exec, ok := r.OnKeyPress(ctx, codeA).(entity.Execute)
	require.True(t, ok)
	assert.Equal(t, "upper", exec.Command.Line())

	// Releasing another key keeps shift held.
	r.OnKeyRelease(codeA)
	assert.True(t, r.Shifted())

	r.OnKeyRelease(codeShiftL)
	assert.False(t, r.Shifted())

	_, ok = r.OnKeyPress(ctx, codeA).(entity.Navigate)
	assert.True(t, ok)
}

func TestResolver_EitherShiftKey(t *testing.T) {
	tree := build(t, group("root", "", leaf("Upper", "A", "upper")))
	r := newResolver(t, tree)

	r.OnKeyPress(context.Background(), codeShiftR)
	assert.True(t, r.Shifted())
	r.OnKeyRelease(codeShiftR)
	assert.False(t, r.Shifted())
}

func TestResolver_Precedence(t *testing.T) {
	tree := build(t, group("root", "",
		group("Apps", "a", leaf("Quit app", "q", "pkill app")),
	))
	ctx := context.Background()

	t.Run("exit key shadows child key", func(t *testing.T) {
		r := newResolver(t, tree)
		apps, ok := r.OnKeyPress(ctx, codeA).(entity.Navigate)
		require.True(t, ok)
		r.RebindCursor(apps.Target)

		assert.Equal(t, entity.Exit{}, r.OnKeyPress(ctx, codeQ))
	})

	t.Run("back key shadows exit key", func(t *testing.T) {
		r := input.NewResolver(newMapper(t), tree.Root(), input.Options{
			Back: keys(t, "q"),
			Exit: keys(t, "q"),
		})
		apps, ok := r.OnKeyPress(ctx, codeA).(entity.Navigate)
		require.True(t, ok)
		r.RebindCursor(apps.Target)

		nav, ok := r.OnKeyPress(ctx, codeQ).(entity.Navigate)
		require.True(t, ok)
		assert.True(t, nav.Target == tree.Root())
	})
}

func TestShiftKeycodes(t *testing.T) {
	m := mocks.NewMockKeyboardMapper(t)
	m.EXPECT().KeysymToKeycode(keysym.ShiftL).Return(codeShiftL).Once()
	m.EXPECT().KeysymToKeycode(keysym.ShiftR).Return(codeShiftR).Once()

	assert.Equal(t, [2]entity.Keycode{codeShiftL, codeShiftR}, input.ShiftKeycodes(m))
}

func mustKey(t *testing.T, spec string) entity.Keybind {
	t.Helper()
	k, err := entity.ParseKeybind(spec)
	require.NoError(t, err)
	return k
}
