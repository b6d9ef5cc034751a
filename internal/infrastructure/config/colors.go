package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses "#rrggbb" or "#rgb" (the "#" is optional) into an opaque
// RGBA color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Palette is ColorConfig with every color parsed.
type Palette struct {
	Background color.RGBA
	Border     color.RGBA
	Separator  color.RGBA
	Key        color.RGBA
	Text       color.RGBA
}

// Palette parses every configured color.
func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		in   string
		out  *color.RGBA
	}{
		{"color.background", c.Background, &p.Background},
		{"color.border", c.Border, &p.Border},
		{"color.separator", c.Separator, &p.Separator},
		{"color.key", c.Key, &p.Key},
		{"color.text", c.Text, &p.Text},
	}
	for _, f := range fields {
		v, err := ParseColor(f.in)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.out = v
	}
	return p, nil
}
