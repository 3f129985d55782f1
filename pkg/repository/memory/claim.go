package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
)

type claimRepository struct {
	mu     sync.RWMutex
	claims map[string]*model.Claim
}

func newClaimRepository() *claimRepository {
	return &claimRepository{
		claims: make(map[string]*model.Claim),
	}
}

func (r *claimRepository) Get(ctx context.Context, id string) (*model.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.claims[id]
	if !exists {
		return nil, nil
	}
	return c.Copy(), nil
}

func (r *claimRepository) Create(ctx context.Context, c *model.Claim) (*model.Claim, error) {
	if c == nil || c.ID == "" {
		return nil, goerr.New("claim ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.claims[c.ID] = c.Copy()
	return c.Copy(), nil
}
