package config

import (
	"github.com/urfave/cli/v3"
)

// Backend names accepted by --backend
const (
	BackendAWS    = "aws"
	BackendGCP    = "gcp"
	BackendMemory = "memory"
)

// Repository holds CLI flags selecting and locating the claim and notes stores
type Repository struct {
	backend        string
	endpointURL    string
	projectID      string
	databaseID     string
	collection     string
	mockClaimsFile string
	mockNotesFile  string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend",
			Usage:       "Live backend (aws, gcp, or memory). Ignored in mock mode",
			Value:       BackendAWS,
			Sources:     cli.EnvVars("CLAIMDESK_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "aws-endpoint-url",
			Category:    "AWS",
			Usage:       "Custom AWS endpoint such as LocalStack (e.g. http://localhost:4566)",
			Sources:     cli.EnvVars("AWS_ENDPOINT_URL"),
			Destination: &r.endpointURL,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Category:    "GCP",
			Usage:       "Firestore Project ID (required when using gcp backend)",
			Sources:     cli.EnvVars("CLAIMDESK_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Category:    "GCP",
			Usage:       "Firestore Database ID",
			Sources:     cli.EnvVars("CLAIMDESK_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Category:    "GCP",
			Usage:       "Firestore collection holding claims",
			Value:       "claims",
			Sources:     cli.EnvVars("CLAIMDESK_FIRESTORE_COLLECTION"),
			Destination: &r.collection,
		},
		&cli.StringFlag{
			Name:        "mock-claims-file",
			Category:    "Mock",
			Usage:       "Claims fixture used in mock mode",
			Value:       "./mocks/claims.json",
			Sources:     cli.EnvVars("CLAIMDESK_MOCK_CLAIMS_FILE"),
			Destination: &r.mockClaimsFile,
		},
		&cli.StringFlag{
			Name:        "mock-notes-file",
			Category:    "Mock",
			Usage:       "Notes fixture used in mock mode",
			Value:       "./mocks/notes.json",
			Sources:     cli.EnvVars("CLAIMDESK_MOCK_NOTES_FILE"),
			Destination: &r.mockNotesFile,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}
