package bar

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"unicode/utf8"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedFace renders every rune as a 7 pixel wide block.
type fixedFace struct{ height int }

func (f fixedFace) Height() int { return f.height }

func (f fixedFace) Render(text string, fg, _ color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 7*utf8.RuneCountInString(text), f.height))
	if img.Bounds().Dx() > 0 {
		img.Set(0, 0, fg)
	}
	return img
}

type put struct {
	width int
	x, y  int
	fg    color.RGBA
}

type fakeSurface struct {
	width, height int
	puts          []put
	err           error
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

func (s *fakeSurface) PutImage(_ context.Context, img image.Image, x, y int) error {
	if s.err != nil {
		return s.err
	}
	rgba := img.(*image.RGBA)
	var fg color.RGBA
	if rgba.Bounds().Dx() > 0 {
		fg = rgba.RGBAAt(0, 0)
	}
	s.puts = append(s.puts, put{width: rgba.Bounds().Dx(), x: x, y: y, fg: fg})
	return nil
}

var (
	keyColor  = color.RGBA{R: 0xff, A: 0xff}
	sepColor  = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	textColor = color.RGBA{G: 0xff, A: 0xff}
)

func testOptions() Options {
	return Options{
		Separator: ":",
		Spacing:   Spacing{Initial: 50, Padding: 5, Skip: 10},
		Colors: Colors{
			Background: color.RGBA{R: 0x55, G: 0xbb, B: 0xff, A: 0xff},
			Separator:  sepColor,
			Key:        keyColor,
			Text:       textColor,
		},
	}
}

func captureContext() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)
	return logging.WithContext(context.Background(), logger), &buf
}

func TestRenderer_UpdateAndDraw(t *testing.T) {
	ctx, logs := captureContext()
	surface := &fakeSurface{width: 1920, height: 20}
	r := NewRenderer(fixedFace{height: 12}, surface, testOptions())

	items := []port.BarItem{
		{Key: "f", Label: "firefox"},
		{Key: "t", Label: "term"},
	}
	require.NoError(t, r.Update(ctx, items))
	require.NoError(t, r.Draw(ctx))

	want := []put{
		{width: 7, x: 50, y: 8, fg: keyColor},
		{width: 7, x: 62, y: 8, fg: sepColor},
		{width: 49, x: 74, y: 8, fg: textColor},
		{width: 7, x: 133, y: 8, fg: keyColor},
		{width: 7, x: 145, y: 8, fg: sepColor},
		{width: 28, x: 157, y: 8, fg: textColor},
	}
	assert.Equal(t, want, surface.puts)
	assert.Empty(t, logs.String())
}

func TestRenderer_DrawRepaintsLastUpdate(t *testing.T) {
	ctx, _ := captureContext()
	surface := &fakeSurface{width: 1920, height: 20}
	r := NewRenderer(fixedFace{height: 12}, surface, testOptions())

	require.NoError(t, r.Draw(ctx))
	assert.Empty(t, surface.puts, "nothing to draw before the first update")

	require.NoError(t, r.Update(ctx, []port.BarItem{{Key: "a", Label: "b"}}))
	require.NoError(t, r.Draw(ctx))
	require.NoError(t, r.Draw(ctx))
	assert.Len(t, surface.puts, 6)

	surface.puts = nil
	require.NoError(t, r.Update(ctx, nil))
	require.NoError(t, r.Draw(ctx))
	assert.Empty(t, surface.puts)
}

func TestRenderer_WarnsWhenTextTallerThanBar(t *testing.T) {
	ctx, logs := captureContext()
	surface := &fakeSurface{width: 1920, height: 10}
	r := NewRenderer(fixedFace{height: 12}, surface, testOptions())

	require.NoError(t, r.Update(ctx, []port.BarItem{{Key: "a", Label: "b"}}))
	require.NoError(t, r.Draw(ctx))

	assert.Contains(t, logs.String(), "bar height is smaller than text height")
	for _, p := range surface.puts {
		assert.Equal(t, 0, p.y)
	}
}

func TestRenderer_WarnsOnOverflow(t *testing.T) {
	ctx, logs := captureContext()
	surface := &fakeSurface{width: 80, height: 20}
	r := NewRenderer(fixedFace{height: 12}, surface, testOptions())

	require.NoError(t, r.Update(ctx, []port.BarItem{{Key: "f", Label: "firefox"}}))
	assert.Contains(t, logs.String(), "keybinds too long to fit on screen")
}

func TestRenderer_DrawError(t *testing.T) {
	ctx, _ := captureContext()
	surface := &fakeSurface{width: 1920, height: 20}
	r := NewRenderer(fixedFace{height: 12}, surface, testOptions())
	require.NoError(t, r.Update(ctx, []port.BarItem{{Key: "a", Label: "b"}}))

	surface.err = errors.New("connection lost")
	err := r.Draw(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
}
