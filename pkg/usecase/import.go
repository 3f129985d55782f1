package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
	"github.com/secmon-lab/claimdesk/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

const importConcurrency = 8

// ImportClaims writes claims as-is, plus their notes when present, with bounded
// parallelism. Existing records with the same ID are overwritten.
func (uc *ClaimUseCase) ImportClaims(ctx context.Context, claims []*model.Claim, notes map[string][]string) error {
	for i, claim := range claims {
		if claim == nil || claim.ID == "" {
			return goerr.New("claim without id cannot be imported", goerr.V("index", i))
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(importConcurrency)

	for _, claim := range claims {
		eg.Go(func() error {
			if _, err := uc.repo.Claim().Create(ctx, claim); err != nil {
				return goerr.Wrap(err, "failed to import claim", goerr.V(ClaimIDKey, claim.ID))
			}

			if claimNotes := notes[claim.ID]; len(claimNotes) > 0 {
				if err := uc.repo.Notes().Save(ctx, claim.ID, claimNotes); err != nil {
					return goerr.Wrap(err, "failed to import claim notes", goerr.V(ClaimIDKey, claim.ID))
				}
			}

			logging.From(ctx).Debug("Claim imported", "claim_id", claim.ID)
			return nil
		})
	}

	return eg.Wait()
}
