package port

import "context"

// BarItem is one selectable entry shown on the bar.
type BarItem struct {
	// Key is the label of the key that selects the entry.
	Key string
	// Label is the entry's display name.
	Label string
}

// BarRenderer draws the list of choices available at the cursor.
type BarRenderer interface {
	// Update recomputes the bar contents for items, in display order.
	Update(ctx context.Context, items []BarItem) error
	// Draw paints the last computed contents.
	Draw(ctx context.Context) error
}
