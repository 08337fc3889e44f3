package main

import (
	"corais/config"
	"corais/helper"
	"corais/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()
	logger.InitLogger(cfg.Server.Env)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up or drop")
	}

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
