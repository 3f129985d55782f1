package summary

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
)

// BuildPrompt renders the instruction sent to live models for one claim and its notes
func BuildPrompt(claim *model.Claim, notes []string) (string, error) {
	raw, err := json.Marshal(claim)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode claim for prompt", goerr.V("claim_id", claim.ID))
	}

	return strings.Join([]string{
		"You are a claims automation assistant. Produce concise outputs.",
		"Return JSON with keys: overallSummary, customerSummary, adjusterSummary, recommendedNextStep.",
		"Claim: " + string(raw),
		"Notes: " + strings.Join(notes, "\n"),
		"Keep customerSummary plain-language and empathetic.",
		"Keep adjusterSummary action-oriented and specific.",
		"recommendedNextStep must be one actionable sentence.",
	}, "\n"), nil
}
