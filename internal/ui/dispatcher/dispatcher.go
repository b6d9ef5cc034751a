// Package dispatcher owns the control loop: it pulls window events, resolves
// key presses and applies the resulting actions.
package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/logging"
	"github.com/bnema/chordbar/internal/ui/input"
)

// State is the dispatcher's lifecycle state.
type State int

const (
	// StateRunning waits for input at the cursor.
	StateRunning State = iota
	// StateTerminated is final; Run returns once it is reached.
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Dispatcher applies resolved actions to the cursor, the bar and the
// process spawner.
type Dispatcher struct {
	resolver *input.Resolver
	events   port.WindowEvents
	renderer port.BarRenderer
	spawner  port.ProcessSpawner

	state State
}

// New creates a dispatcher in StateRunning at the resolver's cursor.
func New(
	resolver *input.Resolver,
	events port.WindowEvents,
	renderer port.BarRenderer,
	spawner port.ProcessSpawner,
) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		events:   events,
		renderer: renderer,
		spawner:  spawner,
		state:    StateRunning,
	}
}

// State returns the current state.
func (d *Dispatcher) State() State {
	return d.state
}

// Cursor returns the active node.
func (d *Dispatcher) Cursor() entity.Node {
	return d.resolver.Cursor()
}

// Run shows the cursor's children and processes events until the session
// terminates. It returns early with an error if the event source fails or
// the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := d.renderer.Update(ctx, BarItems(d.Cursor())); err != nil {
		return fmt.Errorf("render initial bar: %w", err)
	}

	for d.state != StateTerminated {
		ev, err := d.events.NextEvent(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Debug().Msg("event loop cancelled")
			}
			return fmt.Errorf("next event: %w", err)
		}
		if err := d.HandleEvent(ctx, ev); err != nil {
			return err
		}
	}

	log.Debug().Msg("session terminated")
	return nil
}

// HandleEvent applies a single event.
func (d *Dispatcher) HandleEvent(ctx context.Context, ev port.Event) error {
	if d.state == StateTerminated {
		return nil
	}

	switch e := ev.(type) {
	case port.RedrawEvent:
		return d.renderer.Draw(ctx)
	case port.KeyPressEvent:
		ctx = logging.WithNode(ctx, d.Cursor().Name())
		return d.Apply(ctx, d.resolver.OnKeyPress(ctx, e.Code))
	case port.KeyReleaseEvent:
		d.resolver.OnKeyRelease(e.Code)
		return nil
	default:
		return fmt.Errorf("unexpected event %T", ev)
	}
}

// Apply carries out a resolved action.
func (d *Dispatcher) Apply(ctx context.Context, action entity.Action) error {
	log := logging.FromContext(ctx)

	switch a := action.(type) {
	case entity.Navigate:
		if a.Target == d.Cursor() {
			return nil
		}
		return d.navigate(ctx, a.Target)

	case entity.Execute:
		d.execute(ctx, a.Command)
		if !a.Command.KeepRunning() {
			d.state = StateTerminated
		}
		return nil

	case entity.Exit:
		log.Debug().Msg("exit requested")
		d.state = StateTerminated
		return nil

	default:
		return fmt.Errorf("unexpected action %T", action)
	}
}

func (d *Dispatcher) navigate(ctx context.Context, target entity.Node) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("from", d.Cursor().Name()).
		Str("to", target.Name()).
		Msg("cursor moved")

	d.resolver.RebindCursor(target)

	if err := d.renderer.Update(ctx, BarItems(target)); err != nil {
		return fmt.Errorf("render %s: %w", target.Name(), err)
	}
	if err := d.renderer.Draw(ctx); err != nil {
		return fmt.Errorf("draw %s: %w", target.Name(), err)
	}
	if err := d.events.RequestRedraw(); err != nil {
		return fmt.Errorf("request redraw: %w", err)
	}
	return nil
}

// execute spawns every subcommand. Failures are logged; the remaining
// subcommands still run.
func (d *Dispatcher) execute(ctx context.Context, cmd entity.Command) {
	log := logging.FromContext(ctx)

	for _, argv := range cmd.Subcommands() {
		log.Debug().Strs("argv", argv).Msg("spawning")
		if err := d.spawner.Spawn(ctx, argv); err != nil {
			log.Warn().Err(err).Strs("argv", argv).Msg("failed to spawn command")
		}
	}
}

// BarItems lists node's children as bar entries.
func BarItems(node entity.Node) []port.BarItem {
	children := node.Children()
	items := make([]port.BarItem, len(children))
	for i, c := range children {
		items[i] = port.BarItem{Key: c.Key().Label(), Label: c.Name()}
	}
	return items
}
