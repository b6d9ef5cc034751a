// Package textrender turns strings into images with a font face.
package textrender

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// dpi is fixed at 72 so that the configured size is in pixels.
const dpi = 72

// Face renders single-line text.
type Face struct {
	face    font.Face
	ascent  int
	height  int
	builtin bool
}

// Builtin returns the fixed 7x13 bitmap face.
func Builtin() *Face {
	return newFace(basicfont.Face7x13, true)
}

// Load opens the font file at path at the given pixel size. TrueType and
// OpenType files (including collections) are parsed; an empty path or any
// other format yields the built-in face.
func Load(path string, size float64) (*Face, error) {
	if path == "" || !IsScalable(path) {
		return Builtin(), nil
	}
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}

	var parsed *opentype.Font
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		collection, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("parse font collection %s: %w", path, cerr)
		}
		parsed, err = collection.Font(0)
	} else {
		parsed, err = opentype.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face %s: %w", path, err)
	}
	return newFace(face, false), nil
}

// IsScalable reports whether path names a file Load can parse.
func IsScalable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc":
		return true
	default:
		return false
	}
}

func newFace(face font.Face, builtin bool) *Face {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := max(m.Height.Ceil(), ascent+m.Descent.Ceil())
	return &Face{face: face, ascent: ascent, height: height, builtin: builtin}
}

// Builtin reports whether this is the bitmap fallback face.
func (f *Face) Builtin() bool { return f.builtin }

// Height is the pixel height of every rendered image.
func (f *Face) Height() int { return f.height }

// Measure returns the advance width of text in pixels.
func (f *Face) Measure(text string) int {
	return font.MeasureString(f.face, text).Ceil()
}

// Render draws text with fg on a bg-filled image sized to the text.
func (f *Face) Render(text string, fg, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Measure(text), f.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: f.face,
		Dot:  fixed.P(0, f.ascent),
	}
	d.DrawString(text)
	return img
}

// Close releases the underlying face.
func (f *Face) Close() error {
	return f.face.Close()
}
