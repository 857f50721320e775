package main

import (
	"agency/config"
	"agency/di"
	"agency/helper"
	"agency/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Agency Consultation API
// @version 1.0
// @description Consultation booking and availability engine.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
