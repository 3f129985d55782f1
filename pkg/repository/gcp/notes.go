package gcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/utils/safe"
)

type notesRepository struct {
	client *storage.Client
	bucket string
}

func newNotesRepository(client *storage.Client, bucket string) *notesRepository {
	return &notesRepository{
		client: client,
		bucket: bucket,
	}
}

type notesObject struct {
	Notes []string `json:"notes"`
}

func (r *notesRepository) object(claimID string) *storage.ObjectHandle {
	return r.client.Bucket(r.bucket).Object(claimID + ".json")
}

func (r *notesRepository) Get(ctx context.Context, claimID string) ([]string, error) {
	reader, err := r.object(claimID).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return []string{}, nil
		}
		return nil, goerr.Wrap(err, "failed to open notes object", goerr.V("bucket", r.bucket), goerr.V("claim_id", claimID))
	}
	defer safe.Close(ctx, reader)

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read notes object", goerr.V("bucket", r.bucket), goerr.V("claim_id", claimID))
	}
	if len(raw) == 0 {
		return []string{}, nil
	}

	var obj notesObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, goerr.Wrap(err, "failed to parse notes object", goerr.V("bucket", r.bucket), goerr.V("claim_id", claimID))
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

	w := r.object(claimID).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write notes object", goerr.V("bucket", r.bucket), goerr.V("claim_id", claimID))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize notes object", goerr.V("bucket", r.bucket), goerr.V("claim_id", claimID))
	}
	return nil
}
