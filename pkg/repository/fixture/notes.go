package fixture

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/utils/errutil"
	"github.com/secmon-lab/claimdesk/pkg/utils/logging"
)

type notesRepository struct {
	path string
}

// Get returns the notes of a claim from the fixture file. A missing key yields no notes; a
// missing or malformed file is logged and also yields no notes.
func (r *notesRepository) Get(ctx context.Context, claimID string) ([]string, error) {
	all, err := LoadNotes(r.path)
	if err != nil {
		errutil.Handle(ctx, err, "failed to read mock notes file")
		return []string{}, nil
	}

	notes, ok := all[claimID]
	if !ok || notes == nil {
		return []string{}, nil
	}
	return notes, nil
}

func (r *notesRepository) Save(ctx context.Context, claimID string, notes []string) error {
	logging.From(ctx).Info("Mock mode: notes are not persisted", "claim_id", claimID, "count", len(notes))
	return nil
}

// LoadNotes reads a JSON object mapping claim ID to notes from path
func LoadNotes(path string) (map[string][]string, error) {
	// #nosec G304 - path is provided by CLI flag
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read notes fixture", goerr.V("path", path))
	}

	var notes map[string][]string
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, goerr.Wrap(err, "failed to parse notes fixture", goerr.V("path", path))
	}
	return notes, nil
}
