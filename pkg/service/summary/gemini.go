package summary

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
)

// LLM summarizes claims through a gollem client, typically Gemini
type LLM struct {
	llmClient gollem.LLMClient
}

// NewLLM creates a summarizer backed by the provided LLM client
func NewLLM(llmClient gollem.LLMClient) (*LLM, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}
	return &LLM{llmClient: llmClient}, nil
}

func responseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "ClaimSummary",
		Description: "Summary of an insurance claim and its notes",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"overallSummary": {
				Type:        gollem.TypeString,
				Description: "Concise summary of the whole claim",
			},
			"customerSummary": {
				Type:        gollem.TypeString,
				Description: "Plain-language, empathetic summary for the customer",
			},
			"adjusterSummary": {
				Type:        gollem.TypeString,
				Description: "Action-oriented, specific summary for the adjuster",
			},
			"recommendedNextStep": {
				Type:        gollem.TypeString,
				Description: "One actionable sentence",
			},
		},
	}
}

// Summarize asks the model for a JSON summary and parses it leniently
func (l *LLM) Summarize(ctx context.Context, claim *model.Claim, notes []string) (*model.ClaimSummary, error) {
	prompt, err := BuildPrompt(claim, notes)
	if err != nil {
		return nil, err
	}

	session, err := l.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(responseSchema()),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate claim summary", goerr.V("claim_id", claim.ID))
	}

	var text string
	if len(resp.Texts) > 0 {
		text = resp.Texts[0]
	}

	return ParseSummary(ctx, claim.ID, text), nil
}
