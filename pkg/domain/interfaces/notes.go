package interfaces

import "context"

// NotesRepository defines the interface for claim note collections. One collection is kept
// per claim ID and is always replaced as a whole.
type NotesRepository interface {
	// Get returns the notes of a claim. Returns an empty slice if none are stored.
	Get(ctx context.Context, claimID string) ([]string, error)

	// Save replaces the notes of a claim
	Save(ctx context.Context, claimID string, notes []string) error
}
