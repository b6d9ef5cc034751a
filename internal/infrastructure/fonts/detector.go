package fonts

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/logging"
)

// ErrFontNotFound is returned when no installed font file matches a family.
var ErrFontNotFound = errors.New("font not found")

// Fallback chain tried by callers when the configured family is not
// installed (unexported to prevent modification).
var monospaceFallbackChain = []string{
	"Ubuntu Mono",
	"Fira Code",
	"JetBrains Mono",
	"Noto Sans Mono",
	"DejaVu Sans Mono",
	"Liberation Mono",
	"FreeMono",
}

// MonospaceFallbackChain returns the fallback chain for monospace fonts.
func MonospaceFallbackChain() []string {
	result := make([]string, len(monospaceFallbackChain))
	copy(result, monospaceFallbackChain)
	return result
}

// fcListFormat prints one font file per line: path, families, styles.
const fcListFormat = "%{file}\t%{family}\t%{style}\n"

// FontFile is one entry reported by fontconfig.
type FontFile struct {
	Path     string
	Families []string
	Styles   []string
}

// Scalable reports whether the file can be loaded as an OpenType face.
func (f FontFile) Scalable() bool {
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".ttf", ".otf", ".ttc":
		return true
	default:
		return false
	}
}

func (f FontFile) hasFamily(family string) bool {
	return containsNormalized(f.Families, family)
}

func (f FontFile) hasStyle(style string) bool {
	if style == "" {
		return true
	}
	return containsNormalized(f.Styles, style)
}

// Detector implements port.FontLocator using fontconfig's fc-list command.
type Detector struct {
	mu             sync.RWMutex
	cachedFonts    []FontFile
	cachePopulated bool
}

var _ port.FontLocator = (*Detector)(nil)

// NewDetector creates a new font detector.
func NewDetector() *Detector {
	return &Detector{}
}

// IsAvailable implements port.FontLocator.
// Returns true if fc-list command is available on the system.
func (*Detector) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath("fc-list")
	return err == nil
}

// Locate implements port.FontLocator.
func (d *Detector) Locate(ctx context.Context, family, style string) (string, error) {
	log := logging.FromContext(ctx)

	fonts, err := d.InstalledFonts(ctx)
	if err != nil {
		return "", err
	}

	path, ok := MatchFont(fonts, family, style)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}

	log.Debug().
		Str("family", family).
		Str("style", style).
		Str("path", path).
		Msg("located font file")
	return path, nil
}

// InstalledFonts returns the font files known to fontconfig. The result is
// cached after the first successful query.
func (d *Detector) InstalledFonts(ctx context.Context) ([]FontFile, error) {
	log := logging.FromContext(ctx)

	d.mu.RLock()
	if d.cachePopulated {
		fonts := d.cachedFonts
		d.mu.RUnlock()
		return fonts, nil
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	// Double-check after acquiring write lock.
	if d.cachePopulated {
		return d.cachedFonts, nil
	}

	fonts, err := queryFonts(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("failed to query system fonts")
		return nil, err
	}

	d.cachedFonts = fonts
	d.cachePopulated = true
	log.Debug().Int("count", len(fonts)).Msg("cached system fonts")

	return fonts, nil
}

// MatchFont picks the best file for family and style. A file matching both
// wins over one matching only the family; scalable files win ties.
func MatchFont(fonts []FontFile, family, style string) (string, bool) {
	best, bestScore := "", -1
	for _, f := range fonts {
		if !f.hasFamily(family) {
			continue
		}
		score := 0
		if f.hasStyle(style) {
			score += 2
		}
		if f.Scalable() {
			score++
		}
		if score > bestScore {
			best, bestScore = f.Path, score
		}
	}
	return best, bestScore >= 0
}

// queryFonts executes fc-list and parses the output.
func queryFonts(ctx context.Context) ([]FontFile, error) {
	cmd := exec.CommandContext(ctx, "fc-list", "--format", fcListFormat)
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	return ParseFCList(string(output))
}

// ParseFCList parses fc-list output produced with fcListFormat.
func ParseFCList(output string) ([]FontFile, error) {
	var fonts []FontFile
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if fields[0] == "" {
			continue
		}
		f := FontFile{Path: fields[0]}
		// fc-list returns comma-separated values for fonts with aliases.
		// e.g., "DejaVu Sans,DejaVu Sans Light"
		if len(fields) > 1 {
			f.Families = splitList(fields[1])
		}
		if len(fields) > 2 {
			f.Styles = splitList(fields[2])
		}
		fonts = append(fonts, f)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fonts, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// normalizeName folds case and drops separators so "UbuntuMono" and
// "Ubuntu Mono" compare equal.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func containsNormalized(values []string, want string) bool {
	want = normalizeName(want)
	for _, v := range values {
		if normalizeName(v) == want {
			return true
		}
	}
	return false
}
