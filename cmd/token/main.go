// Command token mints an operator token pair for the admin API.
package main

import (
	"agency/config"
	"agency/di"
	"agency/internal/domains/auth/model/dto"
	"agency/shared/logger"
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "token",
		Usage: "mint an operator token pair for the admin API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "operator email", Required: true},
			&cli.StringFlag{Name: "role", Value: "admin", Usage: "operator role (admin or superadmin)"},
			&cli.StringFlag{Name: "id", Usage: "operator id, generated when empty"},
		},
		Action: issue,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("Failed to issue token")
	}
}

func issue(c *cli.Context) error {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	res, err := di.InitializeAuth().Issue(c.Context, dto.IssueTokenRequest{
		OperatorID: c.String("id"),
		Email:      c.String("email"),
		Role:       c.String("role"),
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(res) //nolint:wrapcheck
}
