package main

import (
	"agency/config"
	"agency/helper"
	"agency/shared/logger"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	if len(os.Args) < 2 { //nolint:mnd
		log.Fatal().Msgf("usage: migrate <%s>", strings.Join(helper.Actions(), "|"))
	}

	if err := helper.Run(config.Get(), os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("migration failed")
	}
}
