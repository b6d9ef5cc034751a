package dispatcher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/application/port/mocks"
	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/domain/keysym"
	"github.com/bnema/chordbar/internal/ui/dispatcher"
	"github.com/bnema/chordbar/internal/ui/input"
)

// Keycodes equal keysym values in these tests.
func press(r rune) port.Event {
	return port.KeyPressEvent{Code: entity.Keycode(r)}
}

type fixture struct {
	tree     *entity.BindTree
	events   *mocks.MockWindowEvents
	renderer *mocks.MockBarRenderer
	spawner  *mocks.MockProcessSpawner
	d        *dispatcher.Dispatcher
}

func newFixture(t *testing.T, spec entity.NodeSpec) *fixture {
	t.Helper()
	tree, err := entity.BuildTree(spec, entity.BuildOptions{})
	require.NoError(t, err)

	mapper := mocks.NewMockKeyboardMapper(t)
	mapper.EXPECT().KeycodeToKeysym(mock.Anything, mock.Anything).
		RunAndReturn(func(code entity.Keycode, _ bool) keysym.Keysym {
			return keysym.Keysym(code)
		}).Maybe()

	back, err := entity.ParseKeySet([]string{"h"})
	require.NoError(t, err)
	exit, err := entity.ParseKeySet([]string{"q"})
	require.NoError(t, err)

	resolver := input.NewResolver(mapper, tree.Root(), input.Options{Back: back, Exit: exit})

	f := &fixture{
		tree:     tree,
		events:   mocks.NewMockWindowEvents(gomock.NewController(t)),
		renderer: mocks.NewMockBarRenderer(t),
		spawner:  mocks.NewMockProcessSpawner(t),
	}
	f.d = dispatcher.New(resolver, f.events, f.renderer, f.spawner)
	return f
}

func (f *fixture) feed(evs ...port.Event) {
	calls := make([]any, len(evs))
	for i, ev := range evs {
		calls[i] = f.events.EXPECT().NextEvent(gomock.Any()).Return(ev, nil)
	}
	gomock.InOrder(calls...)
}

func leaf(name, key, line string, keepRunning bool) entity.NodeSpec {
	return entity.NodeSpec{Name: name, Key: key, Command: &entity.CommandSpec{Line: line, KeepRunning: keepRunning}}
}

func group(name, key string, children ...entity.NodeSpec) entity.NodeSpec {
	return entity.NodeSpec{Name: name, Key: key, Group: children}
}

func TestDispatcher_ExecuteAndTerminate(t *testing.T) {
	f := newFixture(t, group("root", "", leaf("Hello", "a", "notify-send hi", false)))
	ctx := context.Background()

	f.renderer.EXPECT().Update(ctx, []port.BarItem{{Key: "a", Label: "Hello"}}).Return(nil).Once()
	f.spawner.EXPECT().Spawn(ctx, []string{"notify-send", "hi"}).Return(nil).Once()
	f.feed(press('a'))

	require.NoError(t, f.d.Run(ctx))
	assert.Equal(t, dispatcher.StateTerminated, f.d.State())
}

func TestDispatcher_KeepRunningStaysAtCursor(t *testing.T) {
	f := newFixture(t, group("root", "",
		group("Media", "m", leaf("Louder", "a", "pamixer -i 5", true)),
	))
	ctx := context.Background()

	media, err := f.tree.Root().ChildAt(mustKey(t, "m"))
	require.NoError(t, err)

	f.renderer.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()
	f.renderer.EXPECT().Draw(ctx).Return(nil).Once()
	f.events.EXPECT().RequestRedraw().Return(nil).Times(1)
	require.NoError(t, f.d.HandleEvent(ctx, press('m')))
	require.True(t, f.d.Cursor() == media)

	f.spawner.EXPECT().Spawn(ctx, []string{"pamixer", "-i", "5"}).Return(nil).Times(2)
	require.NoError(t, f.d.HandleEvent(ctx, press('a')))
	require.NoError(t, f.d.HandleEvent(ctx, press('a')))

	assert.Equal(t, dispatcher.StateRunning, f.d.State())
	assert.True(t, f.d.Cursor() == media)
}

func TestDispatcher_NavigateThenExecute(t *testing.T) {
	f := newFixture(t, group("root", "",
		group("Apps", "a", leaf("Firefox", "b", "firefox", false)),
	))
	ctx := context.Background()

	f.renderer.EXPECT().Update(ctx, []port.BarItem{{Key: "a", Label: "Apps"}}).Return(nil).Once()
	f.renderer.EXPECT().Update(ctx, []port.BarItem{{Key: "b", Label: "Firefox"}}).Return(nil).Once()
	f.renderer.EXPECT().Draw(ctx).Return(nil).Once()
	f.events.EXPECT().RequestRedraw().Return(nil).Times(1)
	f.spawner.EXPECT().Spawn(ctx, []string{"firefox"}).Return(nil).Once()
	f.feed(press('a'), press('b'))

	require.NoError(t, f.d.Run(ctx))
	assert.Equal(t, "Apps", f.d.Cursor().Name())
	assert.Equal(t, dispatcher.StateTerminated, f.d.State())
}

func TestDispatcher_SelfNavigationIsNoop(t *testing.T) {
	f := newFixture(t, group("root", "",
		leaf("One", "a", "one", false),
		leaf("Two", "b", "two", false),
	))
	ctx := context.Background()

	// Back at the root and an unbound key: no render, no redraw request.
	require.NoError(t, f.d.HandleEvent(ctx, press('h')))
	require.NoError(t, f.d.HandleEvent(ctx, press('z')))

	assert.Equal(t, dispatcher.StateRunning, f.d.State())
	assert.True(t, f.d.Cursor() == f.tree.Root())
}

func TestDispatcher_BackNavigatesToParent(t *testing.T) {
	f := newFixture(t, group("root", "",
		group("Apps", "a", leaf("Firefox", "b", "firefox", false)),
	))
	ctx := context.Background()

	f.renderer.EXPECT().Update(ctx, mock.Anything).Return(nil).Twice()
	f.renderer.EXPECT().Draw(ctx).Return(nil).Twice()
	f.events.EXPECT().RequestRedraw().Return(nil).Times(2)

	require.NoError(t, f.d.HandleEvent(ctx, press('a')))
	require.NoError(t, f.d.HandleEvent(ctx, press('h')))
	assert.True(t, f.d.Cursor() == f.tree.Root())
}

func TestDispatcher_ExitAndRedraw(t *testing.T) {
	f := newFixture(t, group("root", "", leaf("One", "a", "one", false)))
	ctx := context.Background()

	f.renderer.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()
	f.renderer.EXPECT().Draw(ctx).Return(nil).Once()
	f.feed(port.RedrawEvent{}, port.KeyReleaseEvent{Code: 'a'}, press('q'))

	require.NoError(t, f.d.Run(ctx))
	assert.Equal(t, dispatcher.StateTerminated, f.d.State())
}

func TestDispatcher_SubcommandsSpawnInOrder(t *testing.T) {
	f := newFixture(t, group("root", "", leaf("Restart", "r", "pkill bar; bar --daemon", false)))
	ctx := context.Background()

	var spawned [][]string
	f.spawner.EXPECT().Spawn(ctx, mock.Anything).
		Run(func(_ context.Context, argv []string) { spawned = append(spawned, argv) }).
		Return(nil).Twice()

	require.NoError(t, f.d.HandleEvent(ctx, press('r')))
	assert.Equal(t, [][]string{{"pkill", "bar"}, {"bar", "--daemon"}}, spawned)
	assert.Equal(t, dispatcher.StateTerminated, f.d.State())
}

func TestDispatcher_SpawnFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, group("root", "", leaf("Missing", "a", "no-such-binary; true", false)))
	ctx := context.Background()

	f.spawner.EXPECT().Spawn(ctx, []string{"no-such-binary"}).Return(errors.New("not found")).Once()
	f.spawner.EXPECT().Spawn(ctx, []string{"true"}).Return(nil).Once()

	require.NoError(t, f.d.HandleEvent(ctx, press('a')))
	assert.Equal(t, dispatcher.StateTerminated, f.d.State())
}

func TestDispatcher_EventSourceError(t *testing.T) {
	f := newFixture(t, group("root", "", leaf("One", "a", "one", false)))
	ctx := context.Background()

	f.renderer.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()
	f.events.EXPECT().NextEvent(gomock.Any()).Return(nil, errors.New("connection closed"))

	err := f.d.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection closed")
	assert.Equal(t, dispatcher.StateRunning, f.d.State())
}

func TestDispatcher_EventsIgnoredAfterTermination(t *testing.T) {
	f := newFixture(t, group("root", "", leaf("One", "a", "one", false)))
	ctx := context.Background()

	require.NoError(t, f.d.Apply(ctx, entity.Exit{}))
	require.NoError(t, f.d.HandleEvent(ctx, press('a')))
	assert.Equal(t, dispatcher.StateTerminated, f.d.State())
}

func TestBarItems(t *testing.T) {
	tree, err := entity.BuildTree(group("root", "",
		leaf("Lock", "comma", "true", false),
		leaf("Term", "t", "true", false),
	), entity.BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, []port.BarItem{
		{Key: "comma", Label: "Lock"},
		{Key: "t", Label: "Term"},
	}, dispatcher.BarItems(tree.Root()))
	assert.Empty(t, dispatcher.BarItems(tree.Root().Children()[0]))
}

func mustKey(t *testing.T, spec string) entity.Keybind {
	t.Helper()
	k, err := entity.ParseKeybind(spec)
	require.NoError(t, err)
	return k
}
