package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrClaimNotFound = errors.New("claim not found")
)

// Context keys for error values
const (
	ClaimIDKey = "claim_id"
)
