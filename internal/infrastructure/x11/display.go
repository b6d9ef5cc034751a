// Package x11 shows the bar as an override-redirect window on an X server
// and reads keyboard input from it.
package x11

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/logging"
)

// ErrGrabFailed is returned when another client keeps the keyboard grabbed.
var ErrGrabFailed = errors.New("unable to grab keyboard")

// ErrClosed is returned by NextEvent once the connection is gone.
var ErrClosed = errors.New("x11 connection closed")

const (
	defaultGrabAttempts = 100
	defaultGrabInterval = 10 * time.Millisecond
)

// Options configures the bar window.
type Options struct {
	BarHeight  int
	BorderSize int
	Background color.RGBA
	Border     color.RGBA
	// GrabAttempts and GrabInterval bound the keyboard grab retries.
	GrabAttempts int
	GrabInterval time.Duration
}

type xevent struct {
	ev  xgb.Event
	err error
}

// Display owns the X connection and the bar windows. It implements
// port.WindowEvents and port.KeyboardMapper, and is the drawing surface for
// the bar renderer.
type Display struct {
	keymap

	xu     *xgbutil.XUtil
	bar    *xwindow.Window
	border *xwindow.Window
	width  int
	height int

	events    chan xevent
	done      chan struct{}
	closeOnce sync.Once
}

var (
	_ port.WindowEvents   = (*Display)(nil)
	_ port.KeyboardMapper = (*Display)(nil)
)

// Open connects to the X server named by $DISPLAY, shows the bar across the
// top of the screen, focuses it and grabs the keyboard.
func Open(ctx context.Context, opts Options) (*Display, error) {
	log := logging.FromContext(ctx)

	if opts.GrabAttempts <= 0 {
		opts.GrabAttempts = defaultGrabAttempts
	}
	if opts.GrabInterval <= 0 {
		opts.GrabInterval = defaultGrabInterval
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	keybind.Initialize(xu)

	screen := xu.Screen()
	d := &Display{
		keymap: newKeymap(xu),
		xu:     xu,
		width:  int(screen.WidthInPixels),
		height: opts.BarHeight,
		events: make(chan xevent),
		done:   make(chan struct{}),
	}

	if err := d.createWindows(opts); err != nil {
		xu.Conn().Close()
		return nil, err
	}

	go d.pump()

	if err := xproto.SetInputFocusChecked(xu.Conn(), xproto.InputFocusParent, d.bar.Id,
		xproto.TimeCurrentTime).Check(); err != nil {
		log.Warn().Err(err).Msg("failed to focus bar window")
	}

	if err := grabKeyboard(ctx, func() (bool, error) {
		reply, gerr := xproto.GrabKeyboard(xu.Conn(), true, d.bar.Id, xproto.TimeCurrentTime,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Reply()
		if gerr != nil {
			return false, gerr
		}
		return reply.Status == xproto.GrabStatusSuccess, nil
	}, opts.GrabAttempts, opts.GrabInterval); err != nil {
		d.Close()
		return nil, err
	}

	log.Debug().
		Int("width", d.width).
		Int("height", d.height).
		Int("border", opts.BorderSize).
		Msg("bar window opened")
	return d, nil
}

func (d *Display) createWindows(opts Options) error {
	conn := d.xu.Conn()
	colormap := d.xu.Screen().DefaultColormap

	bg, err := allocColor(conn, colormap, opts.Background)
	if err != nil {
		return fmt.Errorf("allocate background color: %w", err)
	}

	d.bar, err = newOverrideWindow(d.xu, 0, d.width, d.height, bg,
		xproto.EventMaskExposure|xproto.EventMaskKeyPress|xproto.EventMaskKeyRelease)
	if err != nil {
		return fmt.Errorf("create bar window: %w", err)
	}

	if opts.BorderSize > 0 {
		bc, cerr := allocColor(conn, colormap, opts.Border)
		if cerr != nil {
			return fmt.Errorf("allocate border color: %w", cerr)
		}
		d.border, err = newOverrideWindow(d.xu, d.height, d.width, opts.BorderSize, bc,
			xproto.EventMaskExposure)
		if err != nil {
			return fmt.Errorf("create border window: %w", err)
		}
		d.border.Map()
	}

	d.bar.Map()
	return nil
}

func newOverrideWindow(xu *xgbutil.XUtil, y, width, height int, pixel uint32, mask uint32) (*xwindow.Window, error) {
	win, err := xwindow.Generate(xu)
	if err != nil {
		return nil, err
	}
	err = win.CreateChecked(xu.RootWin(), 0, y, width, height,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		pixel, 1, mask)
	if err != nil {
		return nil, err
	}
	return win, nil
}

func allocColor(conn *xgb.Conn, colormap xproto.Colormap, c color.RGBA) (uint32, error) {
	reply, err := xproto.AllocColor(conn, colormap,
		uint16(c.R)<<8|uint16(c.R), uint16(c.G)<<8|uint16(c.G), uint16(c.B)<<8|uint16(c.B)).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Pixel, nil
}

// grabKeyboard retries try until it succeeds, attempts run out or ctx ends.
// Launchers started from a key binding often race the window manager's own
// grab, so the first attempts may fail.
func grabKeyboard(ctx context.Context, try func() (bool, error), attempts int, interval time.Duration) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		ok, err := try()
		if ok {
			return nil
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	if lastErr != nil {
		return fmt.Errorf("%w: %w", ErrGrabFailed, lastErr)
	}
	return ErrGrabFailed
}

// pump forwards server events until the connection closes.
func (d *Display) pump() {
	defer close(d.events)
	conn := d.xu.Conn()
	for {
		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return
		}
		item := xevent{ev: ev}
		if xerr != nil {
			item.err = xerr
		}
		select {
		case d.events <- item:
		case <-d.done:
			return
		}
	}
}

// NextEvent implements port.WindowEvents. Events other than exposures of
// the bar and key presses/releases are skipped.
func (d *Display) NextEvent(ctx context.Context) (port.Event, error) {
	log := logging.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case item, ok := <-d.events:
			if !ok {
				return nil, ErrClosed
			}
			if item.err != nil {
				log.Warn().Err(item.err).Msg("x11 protocol error")
				continue
			}
			if ev, ok := translate(item.ev, d.bar.Id); ok {
				return ev, nil
			}
		}
	}
}

func translate(ev xgb.Event, bar xproto.Window) (port.Event, bool) {
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		if e.Window != bar || e.Count != 0 {
			return nil, false
		}
		return port.RedrawEvent{}, true
	case xproto.KeyPressEvent:
		return port.KeyPressEvent{Code: entity.Keycode(e.Detail)}, true
	case xproto.KeyReleaseEvent:
		return port.KeyReleaseEvent{Code: entity.Keycode(e.Detail)}, true
	default:
		return nil, false
	}
}

// RequestRedraw implements port.WindowEvents by clearing the bar with
// exposures enabled.
func (d *Display) RequestRedraw() error {
	return xproto.ClearAreaChecked(d.xu.Conn(), true, d.bar.Id, 0, 0,
		uint16(d.width), uint16(d.height)).Check()
}

// Size returns the bar's width and height in pixels.
func (d *Display) Size() (int, int) {
	return d.width, d.height
}

// PutImage paints img onto the bar with its top-left corner at x, y.
func (d *Display) PutImage(_ context.Context, img image.Image, x, y int) error {
	if img.Bounds().Empty() {
		return nil
	}
	ximg := xgraphics.NewConvert(d.xu, img)
	defer ximg.Destroy()

	if err := ximg.CreatePixmap(); err != nil {
		return fmt.Errorf("create pixmap: %w", err)
	}
	ximg.XDraw()
	ximg.XExpPaint(d.bar.Id, x, y)
	return nil
}

// Close releases the keyboard, destroys the windows and closes the
// connection. It is safe to call more than once.
func (d *Display) Close() {
	d.closeOnce.Do(func() {
		conn := d.xu.Conn()
		xproto.UngrabKeyboard(conn, xproto.TimeCurrentTime)
		if d.border != nil {
			d.border.Destroy()
		}
		if d.bar != nil {
			d.bar.Destroy()
		}
		close(d.done)
		conn.Close()
	})
}
