package repository_test

import (
	"context"
	"os"
	"testing"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/claimdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
	"github.com/secmon-lab/claimdesk/pkg/domain/types"
	awsrepo "github.com/secmon-lab/claimdesk/pkg/repository/aws"
	"github.com/secmon-lab/claimdesk/pkg/repository/gcp"
	"github.com/secmon-lab/claimdesk/pkg/repository/memory"
)

func runClaimRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create then Get returns identical claim", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		claim := &model.Claim{
			ID:           model.NewClaimID(),
			Status:       types.ClaimStatusPendingInfo,
			PolicyNumber: "POL-500100",
			LastUpdated:  "2024-07-10T09:15:00.000Z",
			Amount:       4321.5,
			CustomerName: "Morgan Diaz",
			Adjuster:     "Casey Nguyen",
		}

		created, err := repo.Claim().Create(ctx, claim)
		gt.NoError(t, err).Required()
		gt.V(t, *created).Equal(*claim)

		retrieved, err := repo.Claim().Get(ctx, claim.ID)
		gt.NoError(t, err).Required()
		gt.V(t, retrieved).NotNil()
		gt.V(t, *retrieved).Equal(*claim)
	})

	t.Run("Get returns nil for non-existent claim", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		retrieved, err := repo.Claim().Get(ctx, model.NewClaimID())
		gt.NoError(t, err)
		gt.V(t, retrieved).Nil()
	})

	t.Run("Create with same ID overwrites", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		id := model.NewClaimID()

		_, err := repo.Claim().Create(ctx, &model.Claim{ID: id, Status: types.ClaimStatusOpen, Amount: 10})
		gt.NoError(t, err).Required()
		_, err = repo.Claim().Create(ctx, &model.Claim{ID: id, Status: types.ClaimStatusClosed, Amount: 20})
		gt.NoError(t, err).Required()

		retrieved, err := repo.Claim().Get(ctx, id)
		gt.NoError(t, err).Required()
		gt.V(t, retrieved.Status).Equal(types.ClaimStatusClosed)
		gt.V(t, retrieved.Amount).Equal(20.0)
	})

	t.Run("returned claim is not shared with the store", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		id := model.NewClaimID()

		created, err := repo.Claim().Create(ctx, &model.Claim{ID: id, Status: types.ClaimStatusOpen})
		gt.NoError(t, err).Required()
		created.Status = types.ClaimStatusDenied

		retrieved, err := repo.Claim().Get(ctx, id)
		gt.NoError(t, err).Required()
		gt.V(t, retrieved.Status).Equal(types.ClaimStatusOpen)
	})
}

func runNotesRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Save then Get returns notes in order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		id := model.NewClaimID()

		notes := []string{"Adjuster visited the site.", "Estimate requested.", "Customer sent receipts."}
		gt.NoError(t, repo.Notes().Save(ctx, id, notes)).Required()

		retrieved, err := repo.Notes().Get(ctx, id)
		gt.NoError(t, err).Required()
		gt.A(t, retrieved).Equal(notes)
	})

	t.Run("Save replaces the whole collection", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		id := model.NewClaimID()

		gt.NoError(t, repo.Notes().Save(ctx, id, []string{"a", "b", "c"})).Required()
		gt.NoError(t, repo.Notes().Save(ctx, id, []string{"d"})).Required()

		retrieved, err := repo.Notes().Get(ctx, id)
		gt.NoError(t, err).Required()
		gt.A(t, retrieved).Equal([]string{"d"})
	})

	t.Run("Get for unknown claim returns empty slice", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		retrieved, err := repo.Notes().Get(ctx, model.NewClaimID())
		gt.NoError(t, err).Required()
		gt.V(t, retrieved).NotNil()
		gt.A(t, retrieved).Length(0)
	})
}

func TestClaimRepository_Memory(t *testing.T) {
	runClaimRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestNotesRepository_Memory(t *testing.T) {
	runNotesRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func newGCPRepository(t *testing.T) interfaces.Repository {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	bucket := os.Getenv("TEST_GCS_BUCKET")
	if projectID == "" || bucket == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID or TEST_GCS_BUCKET not set")
	}

	repo, err := gcp.New(context.Background(), projectID, os.Getenv("TEST_FIRESTORE_DATABASE_ID"), bucket,
		gcp.WithCollection("test_claims"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func TestClaimRepository_GCP(t *testing.T) {
	runClaimRepositoryTest(t, newGCPRepository)
}

func TestNotesRepository_GCP(t *testing.T) {
	runNotesRepositoryTest(t, newGCPRepository)
}

func newAWSRepository(t *testing.T) interfaces.Repository {
	table := os.Getenv("TEST_DYNAMODB_TABLE")
	bucket := os.Getenv("TEST_S3_BUCKET")
	if table == "" || bucket == "" {
		t.Skip("TEST_DYNAMODB_TABLE or TEST_S3_BUCKET not set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	gt.NoError(t, err).Required()

	return awsrepo.New(dynamodb.NewFromConfig(cfg), table, s3.NewFromConfig(cfg), bucket)
}

func TestClaimRepository_AWS(t *testing.T) {
	runClaimRepositoryTest(t, newAWSRepository)
}

func TestNotesRepository_AWS(t *testing.T) {
	runNotesRepositoryTest(t, newAWSRepository)
}
