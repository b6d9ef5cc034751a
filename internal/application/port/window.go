package port

import (
	"context"
	"fmt"

	"github.com/bnema/chordbar/internal/domain/entity"
)

// Event is a window event delivered to the control loop: RedrawEvent,
// KeyPressEvent or KeyReleaseEvent.
type Event interface {
	isEvent()
}

// RedrawEvent asks for the bar to be repainted.
type RedrawEvent struct{}

// KeyPressEvent reports a physical key going down.
type KeyPressEvent struct {
	Code entity.Keycode
}

// KeyReleaseEvent reports a physical key going up.
type KeyReleaseEvent struct {
	Code entity.Keycode
}

func (RedrawEvent) isEvent()     {}
func (KeyPressEvent) isEvent()   {}
func (KeyReleaseEvent) isEvent() {}

func (RedrawEvent) String() string       { return "Redraw" }
func (e KeyPressEvent) String() string   { return fmt.Sprintf("KeyPress(%d)", e.Code) }
func (e KeyReleaseEvent) String() string { return fmt.Sprintf("KeyRelease(%d)", e.Code) }

//go:generate mockgen -destination=mocks/window_events_gomock.go -package=mocks . WindowEvents

// WindowEvents is the blocking source of window events.
type WindowEvents interface {
	// NextEvent blocks until the next relevant event arrives or ctx is done.
	NextEvent(ctx context.Context) (Event, error)
	// RequestRedraw asks the window system to deliver a RedrawEvent.
	RequestRedraw() error
}
