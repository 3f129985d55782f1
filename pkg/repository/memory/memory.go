package memory

import (
	"github.com/secmon-lab/claimdesk/pkg/domain/interfaces"
)

// Memory keeps claims and notes in process memory. It is used for local development and
// tests; nothing survives a restart.
type Memory struct {
	claim *claimRepository
	notes *notesRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		claim: newClaimRepository(),
		notes: newNotesRepository(),
	}
}

func (m *Memory) Claim() interfaces.ClaimRepository {
	return m.claim
}

func (m *Memory) Notes() interfaces.NotesRepository {
	return m.notes
}

func (m *Memory) Close() error {
	return nil
}
