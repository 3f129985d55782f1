package interfaces

import (
	"context"

	"github.com/secmon-lab/claimdesk/pkg/domain/model"
)

// Summarizer generates a human readable summary of a claim and its notes
type Summarizer interface {
	Summarize(ctx context.Context, claim *model.Claim, notes []string) (*model.ClaimSummary, error)
}
