package bootstrap

import (
	"context"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/infrastructure/config"
	"github.com/bnema/chordbar/internal/infrastructure/fonts"
	"github.com/bnema/chordbar/internal/infrastructure/textrender"
	"github.com/bnema/chordbar/internal/logging"
)

// LoadFace opens the configured font. An explicit path skips discovery;
// otherwise the family is looked up, then the monospace fallback chain.
// Any failure falls back to the built-in face with a warning.
func LoadFace(ctx context.Context, locator port.FontLocator, font config.FontConfig) *textrender.Face {
	log := logging.FromContext(ctx)

	path := font.Path
	if path == "" {
		path = locateFont(ctx, locator, font)
	}
	if path == "" {
		return textrender.Builtin()
	}

	face, err := textrender.Load(path, font.Size)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to load font, using built-in face")
		return textrender.Builtin()
	}
	if face.Builtin() {
		log.Warn().Str("path", path).Msg("unsupported font format, using built-in face")
	}
	return face
}

func locateFont(ctx context.Context, locator port.FontLocator, font config.FontConfig) string {
	log := logging.FromContext(ctx)

	if !locator.IsAvailable(ctx) {
		log.Warn().Msg("font discovery unavailable (fc-list not found), using built-in face")
		return ""
	}

	path, err := locator.Locate(ctx, font.Name, font.Style)
	if err == nil {
		return path
	}
	log.Warn().Err(err).Str("font", font.Name).Msg("configured font not installed, trying fallbacks")

	for _, family := range fonts.MonospaceFallbackChain() {
		if path, err := locator.Locate(ctx, family, font.Style); err == nil {
			log.Debug().Str("font", family).Msg("selected font from fallback chain")
			return path
		}
	}

	log.Warn().Msg("no fallback font installed, using built-in face")
	return ""
}
