package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/handler"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/server"
	"github.com/MKhiriev/go-user-posts/internal/service"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/workers"
	"github.com/MKhiriev/go-user-posts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Bool("session_cache", cfg.Storage.Cache.RedisAddress != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(
		workers.NewSessionSweeper(services.AuthService, cfg.Workers.SessionSweepInterval, log),
	)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
