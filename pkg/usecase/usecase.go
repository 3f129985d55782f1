package usecase

import (
	"github.com/secmon-lab/claimdesk/pkg/domain/interfaces"
)

type UseCases struct {
	repo       interfaces.Repository
	summarizer interfaces.Summarizer
	Claim      *ClaimUseCase
}

func New(repo interfaces.Repository, summarizer interfaces.Summarizer) *UseCases {
	uc := &UseCases{
		repo:       repo,
		summarizer: summarizer,
	}

	uc.Claim = NewClaimUseCase(repo, summarizer)

	return uc
}
