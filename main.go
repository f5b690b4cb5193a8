// Package main implements a cross-platform desktop application template
// built on the Fyne framework.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/YounesRabeh/go-app-template/internal/config"
	"github.com/YounesRabeh/go-app-template/internal/logger"
	"github.com/YounesRabeh/go-app-template/internal/resources"
	"github.com/YounesRabeh/go-app-template/internal/ui"
)

func main() {
	boot := logger.NewConsole(zerolog.InfoLevel)

	cfg, err := config.Load(config.DefaultPath, boot)
	if err != nil {
		boot.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	log, closeLog, err := logger.New(logger.Options{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		Persist: cfg.Logging.Persistence,
		AppName: cfg.App.Name,
	})
	if err != nil {
		boot.Error().Err(err).Msg("failed to configure logging")
		os.Exit(1)
	}
	defer closeLog()

	log.Info().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Bool("dev", cfg.DevMode).
		Msg("starting")

	res, err := resources.NewLocator(cfg.Resources, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to prepare resources")
		os.Exit(1)
	}

	ui.New(cfg, log, res).Run()
}
