package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/cli/config"
	"github.com/secmon-lab/claimdesk/pkg/repository/fixture"
	"github.com/secmon-lab/claimdesk/pkg/usecase"
	"github.com/secmon-lab/claimdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var claimsFile string
	var notesFile string
	var backendCfg config.Backend

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "claims-file",
			Usage:       "JSON array of claims to import",
			Value:       "./mocks/claims.json",
			Destination: &claimsFile,
		},
		&cli.StringFlag{
			Name:        "notes-file",
			Usage:       "JSON object of claim ID to notes to import",
			Value:       "./mocks/notes.json",
			Destination: &notesFile,
		},
	}
	flags = append(flags, backendCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Import fixture claims and notes into the configured live backend",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if backendCfg.Settings().UseMocks {
				return goerr.New("seed writes to a live backend and cannot run in mock mode")
			}

			claims, err := fixture.LoadClaims(claimsFile)
			if err != nil {
				return err
			}
			notes, err := fixture.LoadNotes(notesFile)
			if err != nil {
				return err
			}

			repo, summarizer, err := backendCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize backend")
			}
			defer closeRepository(repo)

			uc := usecase.New(repo, summarizer)
			if err := uc.Claim.ImportClaims(ctx, claims, notes); err != nil {
				return err
			}

			logging.Default().Info("Seed completed",
				"claims", len(claims),
				"backend", backendCfg.Repository.Backend(),
			)
			return nil
		},
	}
}
