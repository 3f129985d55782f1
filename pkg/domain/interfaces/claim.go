package interfaces

import (
	"context"

	"github.com/secmon-lab/claimdesk/pkg/domain/model"
)

// ClaimRepository defines the interface for Claim data access
type ClaimRepository interface {
	// Get retrieves a claim by ID. Returns nil, nil if no claim exists with the ID.
	Get(ctx context.Context, id string) (*model.Claim, error)

	// Create writes the claim as is, overwriting any claim with the same ID
	Create(ctx context.Context, c *model.Claim) (*model.Claim, error)
}
