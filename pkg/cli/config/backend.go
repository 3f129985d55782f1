package config

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/interfaces"
	awsrepo "github.com/secmon-lab/claimdesk/pkg/repository/aws"
	"github.com/secmon-lab/claimdesk/pkg/repository/fixture"
	"github.com/secmon-lab/claimdesk/pkg/repository/gcp"
	"github.com/secmon-lab/claimdesk/pkg/repository/memory"
	"github.com/secmon-lab/claimdesk/pkg/service/summary"
	"github.com/secmon-lab/claimdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Backend groups every flag needed to build the storage adapters and the summarizer
type Backend struct {
	AWS        AWS
	Repository Repository
	Gemini     Gemini
}

// Flags returns CLI flags for backend configuration
func (b *Backend) Flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, b.AWS.Flags()...)
	flags = append(flags, b.Repository.Flags()...)
	flags = append(flags, b.Gemini.Flags()...)
	return flags
}

// Settings returns the resolved deployment settings
func (b *Backend) Settings() Settings {
	return b.AWS.Settings()
}

// Configure builds the repository and summarizer pair. Mock mode wins over --backend.
// The caller is responsible for calling Close() on the returned repository.
func (b *Backend) Configure(ctx context.Context) (interfaces.Repository, interfaces.Summarizer, error) {
	settings := b.Settings()
	logger := logging.Default()

	if settings.UseMocks {
		logger.Info("Using mock fixtures and template summaries",
			"claims_file", b.Repository.mockClaimsFile,
			"notes_file", b.Repository.mockNotesFile,
		)
		return fixture.New(b.Repository.mockClaimsFile, b.Repository.mockNotesFile), summary.NewMock(), nil
	}

	switch b.Repository.backend {
	case BackendAWS:
		return b.configureAWS(ctx, settings)

	case BackendGCP:
		return b.configureGCP(ctx, settings)

	case BackendMemory:
		logger.Info("Using in-memory repository and template summaries (development mode)")
		return memory.New(), summary.NewMock(), nil

	default:
		return nil, nil, goerr.Wrap(ErrInvalidBackend, "unknown backend", goerr.V(BackendKey, b.Repository.backend))
	}
}

// LoadAWSConfig loads the default AWS configuration, pointing every client at endpoint when
// one is given.
func LoadAWSConfig(ctx context.Context, region, endpoint string) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if endpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(endpoint))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, goerr.Wrap(err, "failed to load AWS config",
			goerr.V("region", region),
			goerr.V("endpoint", endpoint))
	}
	return cfg, nil
}

func (b *Backend) configureAWS(ctx context.Context, settings Settings) (interfaces.Repository, interfaces.Summarizer, error) {
	endpoint := b.Repository.endpointURL

	cfg, err := LoadAWSConfig(ctx, settings.Region, endpoint)
	if err != nil {
		return nil, nil, err
	}

	// LocalStack only serves path-style bucket addressing
	s3c := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.UsePathStyle = true
		}
	})
	repo := awsrepo.New(dynamodb.NewFromConfig(cfg), settings.ClaimsTableName, s3c, settings.NotesBucket)

	bedrock := bedrockruntime.NewFromConfig(cfg, func(o *bedrockruntime.Options) {
		o.Region = settings.EffectiveModelRegion()
	})

	logging.Default().Info("Using AWS backend", "settings", settings, "endpoint", endpoint)

	return repo, summary.NewBedrock(bedrock, settings.ModelID), nil
}

func (b *Backend) configureGCP(ctx context.Context, settings Settings) (interfaces.Repository, interfaces.Summarizer, error) {
	if b.Repository.projectID == "" {
		return nil, nil, goerr.Wrap(ErrMissingFlag, "firestore-project-id is required when using gcp backend",
			goerr.V(FlagKey, "firestore-project-id"))
	}

	llmClient, err := b.Gemini.Configure(ctx)
	if err != nil {
		return nil, nil, err
	}
	if llmClient == nil {
		return nil, nil, goerr.Wrap(ErrMissingFlag, "gemini-project is required when using gcp backend",
			goerr.V(FlagKey, "gemini-project"))
	}
	summarizer, err := summary.NewLLM(llmClient)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize summarizer")
	}

	repo, err := gcp.New(ctx, b.Repository.projectID, b.Repository.databaseID, settings.NotesBucket,
		gcp.WithCollection(b.Repository.collection))
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize gcp repository")
	}

	logging.Default().Info("Using GCP backend",
		"project_id", b.Repository.projectID,
		"database_id", b.Repository.databaseID,
		"collection", b.Repository.collection,
		"notes_bucket", settings.NotesBucket,
		slog.Group("gemini", attrsToAny(b.Gemini.LogAttrs())...),
	)

	return repo, summarizer, nil
}

func attrsToAny(attrs []slog.Attr) []any {
	out := make([]any, len(attrs))
	for i, a := range attrs {
		out[i] = a
	}
	return out
}
