package gcp

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultCollection = "claims"

type claimRepository struct {
	client     *firestore.Client
	collection string
}

func newClaimRepository(client *firestore.Client) *claimRepository {
	return &claimRepository{
		client:     client,
		collection: defaultCollection,
	}
}

func (r *claimRepository) Get(ctx context.Context, id string) (*model.Claim, error) {
	docSnap, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get claim", goerr.V("id", id))
	}

	var c model.Claim
	if err := docSnap.DataTo(&c); err != nil {
		return nil, goerr.Wrap(err, "failed to decode claim", goerr.V("id", id))
	}
	return &c, nil
}

func (r *claimRepository) Create(ctx context.Context, c *model.Claim) (*model.Claim, error) {
	if _, err := r.client.Collection(r.collection).Doc(c.ID).Set(ctx, c); err != nil {
		return nil, goerr.Wrap(err, "failed to create claim", goerr.V("id", c.ID))
	}
	return c.Copy(), nil
}
