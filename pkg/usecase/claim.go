package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
	"github.com/secmon-lab/claimdesk/pkg/utils/logging"
)

type ClaimUseCase struct {
	repo       interfaces.Repository
	summarizer interfaces.Summarizer
	now        func() time.Time
}

func NewClaimUseCase(repo interfaces.Repository, summarizer interfaces.Summarizer) *ClaimUseCase {
	return &ClaimUseCase{
		repo:       repo,
		summarizer: summarizer,
		now:        time.Now,
	}
}

func (uc *ClaimUseCase) GetClaim(ctx context.Context, id string) (*model.Claim, error) {
	claim, err := uc.repo.Claim().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get claim", goerr.V(ClaimIDKey, id))
	}
	if claim == nil {
		return nil, goerr.Wrap(ErrClaimNotFound, "claim not found", goerr.V(ClaimIDKey, id))
	}

	return claim.Copy(), nil
}

func (uc *ClaimUseCase) SummarizeClaim(ctx context.Context, id string) (*model.ClaimSummary, error) {
	claim, err := uc.GetClaim(ctx, id)
	if err != nil {
		return nil, err
	}

	notes, err := uc.repo.Notes().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get claim notes", goerr.V(ClaimIDKey, id))
	}

	summary, err := uc.summarizer.Summarize(ctx, claim, notes)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to summarize claim", goerr.V(ClaimIDKey, id))
	}

	return summary, nil
}

// CreateClaim fills defaults for absent fields, persists the claim and then, if any were
// given, its notes. The two writes are not atomic: a notes failure leaves the claim stored.
func (uc *ClaimUseCase) CreateClaim(ctx context.Context, input model.CreateClaimInput) (*model.Claim, error) {
	claim := &model.Claim{
		ID:           input.ID,
		Status:       input.Status.Normalize(),
		PolicyNumber: input.PolicyNumber,
		LastUpdated:  input.LastUpdated,
		Amount:       input.Amount,
		CustomerName: input.CustomerName,
		Adjuster:     input.Adjuster,
	}
	if claim.ID == "" {
		claim.ID = model.NewClaimID()
	}
	if claim.LastUpdated == "" {
		claim.LastUpdated = model.FormatTimestamp(uc.now())
	}

	created, err := uc.repo.Claim().Create(ctx, claim)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create claim", goerr.V(ClaimIDKey, claim.ID))
	}

	if len(input.Notes) > 0 {
		if err := uc.repo.Notes().Save(ctx, created.ID, input.Notes); err != nil {
			return nil, goerr.Wrap(err, "claim was stored but saving its notes failed",
				goerr.V(ClaimIDKey, created.ID),
				goerr.V("notes_count", len(input.Notes)))
		}
	}

	logging.From(ctx).Info("Claim created",
		"claim_id", created.ID,
		"notes_count", len(input.Notes),
	)

	return created, nil
}
