package bar

// Spacing holds the horizontal gaps between bar images, in pixels.
type Spacing struct {
	// Initial is the gap before the first image.
	Initial int
	// Padding separates a key from its separator and the separator from
	// its label.
	Padding int
	// Skip separates a label from the next key.
	Skip int
}

// Layout returns the x position of each image given their widths. Images
// come in (key, separator, label) triples; gaps after the first image cycle
// through padding, padding, skip.
func Layout(widths []int, s Spacing) []int {
	xs := make([]int, len(widths))
	gaps := [3]int{s.Padding, s.Padding, s.Skip}
	x := s.Initial
	for i := range widths {
		if i > 0 {
			x += widths[i-1] + gaps[(i-1)%3]
		}
		xs[i] = x
	}
	return xs
}

// Extent returns the right edge of the last image, or 0 when empty.
func Extent(xs, widths []int) int {
	if len(xs) == 0 {
		return 0
	}
	last := len(xs) - 1
	return xs[last] + widths[last]
}
