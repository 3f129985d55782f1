package fixture

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
	"github.com/secmon-lab/claimdesk/pkg/utils/errutil"
)

type claimRepository struct {
	path string
}

// Get looks up a claim in the fixture file. A missing or malformed file is logged and
// treated as if the claim did not exist.
func (r *claimRepository) Get(ctx context.Context, id string) (*model.Claim, error) {
	claims, err := LoadClaims(r.path)
	if err != nil {
		errutil.Handle(ctx, err, "failed to read mock claims file")
		return nil, nil
	}

	for _, c := range claims {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *claimRepository) Create(ctx context.Context, c *model.Claim) (*model.Claim, error) {
	return nil, goerr.Wrap(ErrUnsupported, "creating claims in mock mode is not supported", goerr.V("claim_id", c.ID))
}

// LoadClaims reads a JSON array of claims from path
func LoadClaims(path string) ([]*model.Claim, error) {
	// #nosec G304 - path is provided by CLI flag
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read claims fixture", goerr.V("path", path))
	}

	var claims []*model.Claim
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, goerr.Wrap(err, "failed to parse claims fixture", goerr.V("path", path))
	}
	for i, c := range claims {
		if c == nil {
			return nil, goerr.New("claims fixture has a null entry", goerr.V("path", path), goerr.V("index", i))
		}
	}
	return claims, nil
}
