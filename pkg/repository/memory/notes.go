package memory

import (
	"context"
	"sync"
)

type notesRepository struct {
	mu    sync.RWMutex
	notes map[string][]string
}

func newNotesRepository() *notesRepository {
	return &notesRepository{
		notes: make(map[string][]string),
	}
}

func (r *notesRepository) Get(ctx context.Context, claimID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.notes[claimID]
	notes := make([]string, len(stored))
	copy(notes, stored)
	return notes, nil
}

func (r *notesRepository) Save(ctx context.Context, claimID string, notes []string) error {
	copied := make([]string, len(notes))
	copy(copied, notes)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes[claimID] = copied
	return nil
}
