package main

import (
	"corais/config"
	"corais/di"
	"corais/helper"
	"corais/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Villa dos Corais API
// @version 1.0
// @description Room catalog and reservation requests for Villa dos Corais.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
