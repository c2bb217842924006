package main

import (
	"context"
	"fmt"

	"github.com/promptkeep/prompt-keeper/internal/config"
	httphandler "github.com/promptkeep/prompt-keeper/internal/handler/http"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/server"
	"github.com/promptkeep/prompt-keeper/internal/service"
	"github.com/promptkeep/prompt-keeper/internal/store"
	"github.com/promptkeep/prompt-keeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("prompt-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.App, log)
	handler := httphandler.NewHandler(services, cfg, db.DB, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
