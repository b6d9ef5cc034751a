package port

import "context"

// FontLocator finds font files installed on the system.
type FontLocator interface {
	// Locate returns the path of the font file for family and style.
	// It returns an error if no installed font matches the family.
	Locate(ctx context.Context, family, style string) (string, error)

	// IsAvailable returns true if font discovery works on this system
	// (e.g. fc-list is installed).
	IsAvailable(ctx context.Context) bool
}
