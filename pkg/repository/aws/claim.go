package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
)

type claimRepository struct {
	db    DynamoDBAPI
	table string
}

func (r *claimRepository) Get(ctx context.Context, id string) (*model.Claim, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get claim", goerr.V("id", id), goerr.V("table", r.table))
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var c model.Claim
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, goerr.Wrap(err, "failed to decode claim", goerr.V("id", id))
	}
	return &c, nil
}

// Create puts the claim without a condition expression, so an existing item with the same
// ID is replaced.
func (r *claimRepository) Create(ctx context.Context, c *model.Claim) (*model.Claim, error) {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode claim", goerr.V("id", c.ID))
	}

	if _, err := r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to put claim", goerr.V("id", c.ID), goerr.V("table", r.table))
	}

	return c.Copy(), nil
}
