package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/secmon-lab/claimdesk/pkg/domain/model"
)

// Mock produces a deterministic summary from templates without calling any model
type Mock struct{}

// NewMock creates a template based summarizer
func NewMock() *Mock {
	return &Mock{}
}

// Summarize fills every field from the claim and at most the first two notes
func (m *Mock) Summarize(ctx context.Context, claim *model.Claim, notes []string) (*model.ClaimSummary, error) {
	snippet := strings.Join(notes[:min(2, len(notes))], " ")

	return &model.ClaimSummary{
		ClaimID:             claim.ID,
		OverallSummary:      fmt.Sprintf("Claim %s is %s. %s", claim.ID, claim.Status, snippet),
		CustomerSummary:     fmt.Sprintf("We are working on your claim %s. Status: %s.", claim.ID, claim.Status),
		AdjusterSummary:     fmt.Sprintf("Focus on documentation for claim %s; latest note: %s", claim.ID, snippet),
		RecommendedNextStep: "Verify documents and contact customer within 1 business day.",
	}, nil
}
