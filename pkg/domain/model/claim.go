package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/claimdesk/pkg/domain/types"
)

// ClaimIDPrefix is prepended to every generated claim ID
const ClaimIDPrefix = "CLM-"

// TimestampLayout is the format of Claim.LastUpdated
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Claim represents one insurance claim. All fields are scalars and ID never changes after
// the claim is created.
type Claim struct {
	ID           string            `json:"id" dynamodbav:"id" firestore:"id"`
	Status       types.ClaimStatus `json:"status" dynamodbav:"status" firestore:"status"`
	PolicyNumber string            `json:"policyNumber" dynamodbav:"policyNumber" firestore:"policyNumber"`
	LastUpdated  string            `json:"lastUpdated" dynamodbav:"lastUpdated" firestore:"lastUpdated"`
	Amount       float64           `json:"amount" dynamodbav:"amount" firestore:"amount"`
	CustomerName string            `json:"customerName" dynamodbav:"customerName" firestore:"customerName"`
	Adjuster     string            `json:"adjuster" dynamodbav:"adjuster" firestore:"adjuster"`
}

// Copy returns a copy of the claim
func (c *Claim) Copy() *Claim {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

// NewClaimID generates a time-ordered claim ID
func NewClaimID() string {
	return ClaimIDPrefix + uuid.Must(uuid.NewV7()).String()
}

// FormatTimestamp formats t as a claim timestamp
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// CreateClaimInput is a partially filled claim plus optional notes. Missing fields get
// defaults when the claim is created.
type CreateClaimInput struct {
	ID           string
	Status       types.ClaimStatus
	PolicyNumber string
	LastUpdated  string
	Amount       float64
	CustomerName string
	Adjuster     string
	Notes        []string
}

// ClaimSummary is the generated, never persisted, view of a claim and its notes
type ClaimSummary struct {
	ClaimID             string `json:"claimId"`
	OverallSummary      string `json:"overallSummary"`
	CustomerSummary     string `json:"customerSummary"`
	AdjusterSummary     string `json:"adjusterSummary"`
	RecommendedNextStep string `json:"recommendedNextStep"`
}
