package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Settings is the resolved deployment configuration. It is built once at startup and is
// read-only afterwards.
type Settings struct {
	Region          string
	ClaimsTableName string
	NotesBucket     string
	ModelID         string
	ModelRegion     string
	UseMocks        bool
}

// EffectiveModelRegion returns the model region override, or Region when none is set
func (s Settings) EffectiveModelRegion() string {
	if s.ModelRegion != "" {
		return s.ModelRegion
	}
	return s.Region
}

// LogValue implements slog.LogValuer
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("region", s.Region),
		slog.String("claims_table", s.ClaimsTableName),
		slog.String("notes_bucket", s.NotesBucket),
		slog.String("model_id", s.ModelID),
		slog.String("model_region", s.EffectiveModelRegion()),
		slog.Bool("use_mocks", s.UseMocks),
	)
}

// AWS holds CLI flags for the storage and model settings. Environment variable names match
// the deployment templates, so no prefix is used.
type AWS struct {
	region      string
	table       string
	bucket      string
	modelID     string
	modelRegion string
	useMocks    string
}

// Flags returns CLI flags for the deployment settings
func (a *AWS) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "aws-region",
			Category:    "AWS",
			Usage:       "AWS region of the claims table and notes bucket",
			Value:       "us-east-1",
			Sources:     cli.EnvVars("AWS_REGION"),
			Destination: &a.region,
		},
		&cli.StringFlag{
			Name:        "claims-table-name",
			Category:    "AWS",
			Usage:       "DynamoDB table holding claims",
			Value:       "claims-table",
			Sources:     cli.EnvVars("CLAIMS_TABLE_NAME"),
			Destination: &a.table,
		},
		&cli.StringFlag{
			Name:        "notes-bucket",
			Category:    "AWS",
			Usage:       "Bucket holding claim notes (S3 or GCS)",
			Value:       "claim-notes-bucket",
			Sources:     cli.EnvVars("NOTES_BUCKET"),
			Destination: &a.bucket,
		},
		&cli.StringFlag{
			Name:        "bedrock-model-id",
			Category:    "AWS",
			Usage:       "Bedrock model ID used for summaries",
			Value:       "amazon.nova-micro-v1:0",
			Sources:     cli.EnvVars("BEDROCK_MODEL_ID"),
			Destination: &a.modelID,
		},
		&cli.StringFlag{
			Name:        "bedrock-region",
			Category:    "AWS",
			Usage:       "Bedrock region (defaults to --aws-region)",
			Sources:     cli.EnvVars("BEDROCK_REGION"),
			Destination: &a.modelRegion,
		},
		&cli.StringFlag{
			Name:        "use-mocks",
			Usage:       "Serve from local fixtures and template summaries when set to \"true\"",
			Sources:     cli.EnvVars("USE_MOCKS"),
			Destination: &a.useMocks,
		},
	}
}

// Settings returns the resolved settings
func (a *AWS) Settings() Settings {
	return Settings{
		Region:          a.region,
		ClaimsTableName: a.table,
		NotesBucket:     a.bucket,
		ModelID:         a.modelID,
		ModelRegion:     a.modelRegion,
		UseMocks:        a.useMocks == "true",
	}
}
