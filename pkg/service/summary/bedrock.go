package summary

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
)

// BedrockAPI is the subset of the Bedrock runtime client used by the summarizer
type BedrockAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

const (
	bedrockMaxTokens   = 1024
	bedrockTemperature = 0.3
)

// Bedrock summarizes claims with a messages-style model on Amazon Bedrock
type Bedrock struct {
	client  BedrockAPI
	modelID string
}

// NewBedrock creates a Bedrock summarizer for the given model
func NewBedrock(client BedrockAPI, modelID string) *Bedrock {
	return &Bedrock{
		client:  client,
		modelID: modelID,
	}
}

type bedrockContent struct {
	Text string `json:"text"`
}

type bedrockMessage struct {
	Role    string           `json:"role"`
	Content []bedrockContent `json:"content"`
}

type bedrockInferenceConfig struct {
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
}

type bedrockRequest struct {
	Messages        []bedrockMessage       `json:"messages"`
	InferenceConfig bedrockInferenceConfig `json:"inferenceConfig"`
}

type bedrockResponse struct {
	Output struct {
		Message struct {
			Content []bedrockContent `json:"content"`
		} `json:"message"`
	} `json:"output"`
}

// Summarize invokes the model once and parses its text leniently
func (b *Bedrock) Summarize(ctx context.Context, claim *model.Claim, notes []string) (*model.ClaimSummary, error) {
	prompt, err := BuildPrompt(claim, notes)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(bedrockRequest{
		Messages: []bedrockMessage{
			{Role: "user", Content: []bedrockContent{{Text: prompt}}},
		},
		InferenceConfig: bedrockInferenceConfig{
			MaxTokens:   bedrockMaxTokens,
			Temperature: bedrockTemperature,
		},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode bedrock request")
	}

	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to invoke bedrock model",
			goerr.V("model_id", b.modelID),
			goerr.V("claim_id", claim.ID))
	}

	var resp bedrockResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to decode bedrock response",
			goerr.V("model_id", b.modelID),
			goerr.V("body", string(out.Body)))
	}

	var text string
	if len(resp.Output.Message.Content) > 0 {
		text = resp.Output.Message.Content[0].Text
	}

	return ParseSummary(ctx, claim.ID, text), nil
}
