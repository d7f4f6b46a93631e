package main

import (
	"github.com/ah01567/Bookini/config"
	"github.com/ah01567/Bookini/di"
	"github.com/ah01567/Bookini/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.Reaper.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start publish job reaper")
	}
	defer app.Reaper.Stop()

	app.HTTP.Serve()
}
