// Package gcp stores claims in Firestore and claim notes in Google Cloud Storage.
package gcp

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/interfaces"
)

type GCP struct {
	firestore *firestore.Client
	storage   *storage.Client
	claim     *claimRepository
	notes     *notesRepository
}

var _ interfaces.Repository = &GCP{}

type Option func(*GCP)

func WithCollection(name string) Option {
	return func(g *GCP) {
		g.claim.collection = name
	}
}

func New(ctx context.Context, projectID, databaseID, bucket string, opts ...Option) (*GCP, error) {
	var fsClient *firestore.Client
	var err error
	if databaseID != "" {
		fsClient, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		fsClient, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	gcsClient, err := storage.NewClient(ctx)
	if err != nil {
		_ = fsClient.Close()
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	g := &GCP{
		firestore: fsClient,
		storage:   gcsClient,
		claim:     newClaimRepository(fsClient),
		notes:     newNotesRepository(gcsClient, bucket),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *GCP) Claim() interfaces.ClaimRepository {
	return g.claim
}

func (g *GCP) Notes() interfaces.NotesRepository {
	return g.notes
}

func (g *GCP) Close() error {
	var errs []error
	if g.firestore != nil {
		if err := g.firestore.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return goerr.New("failed to close gcp clients", goerr.V("errors", errs))
	}
	return nil
}
