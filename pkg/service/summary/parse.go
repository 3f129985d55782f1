package summary

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/secmon-lab/claimdesk/pkg/domain/model"
	"github.com/secmon-lab/claimdesk/pkg/utils/logging"
)

// FallbackNextStep is used when the model output cannot be read as JSON
const FallbackNextStep = "Review generated summary and determine next action."

// ParseSummary maps raw model text onto a summary. It never fails: undecodable text or a JSON
// null yields the fallback shape with the raw text in the summary fields. Valid JSON that is
// not an object is read as an object with no keys.
func ParseSummary(ctx context.Context, claimID, text string) *model.ClaimSummary {
	var decoded any
	err := json.Unmarshal([]byte(stripCodeFence(text)), &decoded)
	if err != nil || decoded == nil {
		logging.From(ctx).Warn("Model returned non-JSON summary, using fallback",
			"claim_id", claimID,
			"error", err,
		)
		return &model.ClaimSummary{
			ClaimID:             claimID,
			OverallSummary:      text,
			CustomerSummary:     text,
			AdjusterSummary:     text,
			RecommendedNextStep: FallbackNextStep,
		}
	}

	fields, ok := decoded.(map[string]any)
	if !ok {
		fields = map[string]any{}
	}

	overall := fieldText(fields, "overallSummary")
	if _, ok := fields["overallSummary"]; !ok || fields["overallSummary"] == nil {
		overall = text
	}

	return &model.ClaimSummary{
		ClaimID:             claimID,
		OverallSummary:      overall,
		CustomerSummary:     fieldText(fields, "customerSummary"),
		AdjusterSummary:     fieldText(fields, "adjusterSummary"),
		RecommendedNextStep: fieldText(fields, "recommendedNextStep"),
	}
}

func fieldText(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

// stripCodeFence removes a surrounding Markdown code fence such as ```json ... ```
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	body := strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(body, "\n"); idx >= 0 {
		body = body[idx+1:]
	} else {
		return trimmed
	}
	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}
