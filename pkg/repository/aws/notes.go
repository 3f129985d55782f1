package aws

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/utils/safe"
)

const contentTypeJSON = "application/json"

type notesRepository struct {
	s3     S3API
	bucket string
}

// notesObject is the body of a notes object
type notesObject struct {
	Notes []string `json:"notes"`
}

// NotesKey returns the object key holding the notes of a claim
func NotesKey(claimID string) string {
	return claimID + ".json"
}

func (r *notesRepository) Get(ctx context.Context, claimID string) ([]string, error) {
	key := NotesKey(claimID)
	out, err := r.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return []string{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get notes object", goerr.V("bucket", r.bucket), goerr.V("key", key))
	}
	if out.Body == nil {
		return []string{}, nil
	}
	defer safe.Close(ctx, out.Body)

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read notes object", goerr.V("bucket", r.bucket), goerr.V("key", key))
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return []string{}, nil
	}

	var obj notesObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, goerr.Wrap(err, "failed to parse notes object", goerr.V("bucket", r.bucket), goerr.V("key", key))
	}
	if obj.Notes == nil {
		return []string{}, nil
	}
	return obj.Notes, nil
}

func (r *notesRepository) Save(ctx context.Context, claimID string, notes []string) error {
	if notes == nil {
		notes = []string{}
	}
	body, err := json.Marshal(notesObject{Notes: notes})
	if err != nil {
		return goerr.Wrap(err, "failed to encode notes", goerr.V("claim_id", claimID))
	}

	key := NotesKey(claimID)
	if _, err := r.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentTypeJSON),
	}); err != nil {
		return goerr.Wrap(err, "failed to put notes object", goerr.V("bucket", r.bucket), goerr.V("key", key))
	}
	return nil
}
