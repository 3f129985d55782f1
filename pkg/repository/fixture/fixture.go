// Package fixture serves claims and notes from static JSON files for mock mode. The files
// are never written: Claim().Create fails and Notes().Save only logs.
package fixture

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/interfaces"
)

// ErrUnsupported is returned for write operations that mock mode does not allow
var ErrUnsupported = goerr.New("operation is not supported in mock mode")

type Fixture struct {
	claim *claimRepository
	notes *notesRepository
}

var _ interfaces.Repository = &Fixture{}

// New creates a fixture repository reading claims from claimsPath (a JSON array of claims)
// and notes from notesPath (a JSON object mapping claim ID to a list of notes).
func New(claimsPath, notesPath string) *Fixture {
	return &Fixture{
		claim: &claimRepository{path: claimsPath},
		notes: &notesRepository{path: notesPath},
	}
}

func (f *Fixture) Claim() interfaces.ClaimRepository {
	return f.claim
}

func (f *Fixture) Notes() interfaces.NotesRepository {
	return f.notes
}

func (f *Fixture) Close() error {
	return nil
}
