// Package bar draws the choices available at the cursor as a row of
// key, separator and label images.
package bar

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/logging"
)

// TextFace renders text to images of a fixed height.
type TextFace interface {
	Render(text string, fg, bg color.Color) *image.RGBA
	Height() int
}

// Surface is the window the bar is painted on.
type Surface interface {
	PutImage(ctx context.Context, img image.Image, x, y int) error
	// Size returns the drawable width and height in pixels.
	Size() (width, height int)
}

// Colors used for each kind of image.
type Colors struct {
	Background color.Color
	Separator  color.Color
	Key        color.Color
	Text       color.Color
}

// Options configures a Renderer.
type Options struct {
	Separator string
	Spacing   Spacing
	Colors    Colors
}

type placement struct {
	img image.Image
	x   int
}

// Renderer implements port.BarRenderer on top of a Surface.
type Renderer struct {
	face    TextFace
	surface Surface
	opts    Options

	mu     sync.Mutex
	placed []placement
	y      int
}

var _ port.BarRenderer = (*Renderer)(nil)

// NewRenderer creates a renderer drawing with face onto surface.
func NewRenderer(face TextFace, surface Surface, opts Options) *Renderer {
	return &Renderer{face: face, surface: surface, opts: opts}
}

// Update implements port.BarRenderer.
func (r *Renderer) Update(ctx context.Context, items []port.BarItem) error {
	log := logging.FromContext(ctx)

	c := r.opts.Colors
	sep := r.face.Render(r.opts.Separator, c.Separator, c.Background)

	images := make([]image.Image, 0, len(items)*3)
	widths := make([]int, 0, len(items)*3)
	for _, item := range items {
		key := r.face.Render(item.Key, c.Key, c.Background)
		label := r.face.Render(item.Label, c.Text, c.Background)
		for _, img := range []*image.RGBA{key, sep, label} {
			images = append(images, img)
			widths = append(widths, img.Bounds().Dx())
		}
	}

	xs := Layout(widths, r.opts.Spacing)
	screenWidth, barHeight := r.surface.Size()

	y := barHeight - r.face.Height()
	if y < 0 {
		log.Warn().
			Int("bar_height", barHeight).
			Int("text_height", r.face.Height()).
			Msg("bar height is smaller than text height, decrease font size or increase bar height")
		y = 0
	}
	if extent := Extent(xs, widths); extent > screenWidth {
		log.Warn().
			Int("screen_width", screenWidth).
			Int("needed", extent).
			Msg("keybinds too long to fit on screen, decrease font size or paddings")
	}

	placed := make([]placement, len(images))
	for i, img := range images {
		placed[i] = placement{img: img, x: xs[i]}
	}

	r.mu.Lock()
	r.placed = placed
	r.y = y
	r.mu.Unlock()

	log.Debug().Int("items", len(items)).Msg("bar updated")
	return nil
}

// Draw implements port.BarRenderer.
func (r *Renderer) Draw(ctx context.Context) error {
	r.mu.Lock()
	placed := r.placed
	y := r.y
	r.mu.Unlock()

	for i, p := range placed {
		if err := r.surface.PutImage(ctx, p.img, p.x, y); err != nil {
			return fmt.Errorf("draw image %d: %w", i, err)
		}
	}
	return nil
}
