// Package terminal runs the bar inside a terminal for trying out bindings
// without an X server.
package terminal

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/logging"
)

// ErrInterrupted is returned by NextEvent after Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

// ErrClosed is returned by NextEvent once the terminal program has exited.
var ErrClosed = errors.New("terminal session closed")

// maxOutputLines bounds the command log shown under the bar.
const maxOutputLines = 10

// Colors are lipgloss colors for each part of the bar.
type Colors struct {
	Background lipgloss.Color
	Separator  lipgloss.Color
	Key        lipgloss.Color
	Text       lipgloss.Color
}

// Options configures a Session.
type Options struct {
	Separator string
	Colors    Colors
	// BackKeys and ExitKeys label the action keys in the help line.
	BackKeys []string
	ExitKeys []string
	// Input and Output default to the process terminal.
	Input  io.Reader
	Output io.Writer
}

// Session is a bubbletea program acting as the bar window. It implements
// port.WindowEvents, port.BarRenderer and io.Writer (command log).
type Session struct {
	program *tea.Program

	mu          sync.Mutex
	queue       []port.Event
	interrupted bool
	closed      bool
	notify      chan struct{}
}

var (
	_ port.WindowEvents = (*Session)(nil)
	_ port.BarRenderer  = (*Session)(nil)
)

// NewSession creates a session. Call Run to start it.
func NewSession(ctx context.Context, opts Options) *Session {
	s := &Session{notify: make(chan struct{}, 1)}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	s.program = tea.NewProgram(newModel(s, opts), progOpts...)

	// A freshly shown window is exposed once.
	s.push(port.RedrawEvent{})
	return s
}

// Run runs the terminal program and loop side by side until either ends.
// Ending the loop quits the program; Ctrl+C in the program makes the loop's
// NextEvent fail with ErrInterrupted, which Run reports as a clean exit.
func (s *Session) Run(ctx context.Context, loop func(ctx context.Context) error) error {
	log := logging.FromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer s.close()
		_, err := s.program.Run()
		return err
	})

	g.Go(func() error {
		defer s.program.Quit()
		err := loop(gctx)
		if errors.Is(err, ErrInterrupted) {
			log.Debug().Msg("preview interrupted")
			return nil
		}
		return err
	})

	return g.Wait()
}

// push queues ev for NextEvent without blocking the program.
func (s *Session) push(ev port.Event) {
	s.mu.Lock()
	s.queue = append(s.queue, ev)
	s.mu.Unlock()
	s.signal()
}

func (s *Session) signal() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *Session) interrupt() {
	s.mu.Lock()
	s.interrupted = true
	s.mu.Unlock()
	s.signal()
}

func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.signal()
}

// NextEvent implements port.WindowEvents.
func (s *Session) NextEvent(ctx context.Context) (port.Event, error) {
	for {
		s.mu.Lock()
		switch {
		case s.interrupted:
			s.mu.Unlock()
			return nil, ErrInterrupted
		case len(s.queue) > 0:
			ev := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return ev, nil
		case s.closed:
			s.mu.Unlock()
			return nil, ErrClosed
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.notify:
		}
	}
}

// RequestRedraw implements port.WindowEvents.
func (s *Session) RequestRedraw() error {
	s.push(port.RedrawEvent{})
	return nil
}

// Update implements port.BarRenderer.
func (s *Session) Update(_ context.Context, items []port.BarItem) error {
	cp := make([]port.BarItem, len(items))
	copy(cp, items)
	s.program.Send(itemsMsg{items: cp})
	return nil
}

// Draw implements port.BarRenderer.
func (s *Session) Draw(_ context.Context) error {
	s.program.Send(drawMsg{})
	return nil
}

// Write appends lines to the command log shown under the bar.
func (s *Session) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		s.program.Send(outputMsg{line: line})
	}
	return len(p), nil
}
