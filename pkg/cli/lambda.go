package cli

import (
	"context"

	"github.com/secmon-lab/claimdesk/pkg/cli/config"
	lambdactrl "github.com/secmon-lab/claimdesk/pkg/controller/lambda"
	"github.com/secmon-lab/claimdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdLambda() *cli.Command {
	var backendCfg config.Backend

	return &cli.Command{
		Name:  "lambda",
		Usage: "Serve the HTTP API as an AWS Lambda function behind API Gateway",
		Flags: backendCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			// Start never returns and the runtime owns process exit, so the
			// repository is left open for the lifetime of the function instance.
			handler, _, err := newHandler(ctx, &backendCfg)
			if err != nil {
				return err
			}

			logging.Default().Info("Starting Lambda handler")
			lambdactrl.New(handler).Start()
			return nil
		},
	}
}
