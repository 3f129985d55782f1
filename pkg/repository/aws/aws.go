// Package aws stores claims in DynamoDB and claim notes in S3.
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/secmon-lab/claimdesk/pkg/domain/interfaces"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the claim repository
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// S3API is the subset of the S3 client used by the notes repository
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type AWS struct {
	claim *claimRepository
	notes *notesRepository
}

var _ interfaces.Repository = &AWS{}

// New creates a repository backed by the claims table and the notes bucket
func New(db DynamoDBAPI, table string, s3c S3API, bucket string) *AWS {
	return &AWS{
		claim: &claimRepository{db: db, table: table},
		notes: &notesRepository{s3: s3c, bucket: bucket},
	}
}

func (a *AWS) Claim() interfaces.ClaimRepository {
	return a.claim
}

func (a *AWS) Notes() interfaces.NotesRepository {
	return a.notes
}

// Close is a no-op for SDK clients
func (a *AWS) Close() error {
	return nil
}
