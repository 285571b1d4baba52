package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/secretwall/secretwall/internal/config"
	httphandler "github.com/secretwall/secretwall/internal/handler/http"
	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/server"
	"github.com/secretwall/secretwall/internal/service"
	"github.com/secretwall/secretwall/internal/store"
	"github.com/secretwall/secretwall/internal/view"
	"github.com/secretwall/secretwall/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("secretwall-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// one signal-derived context for everything that must stop on shutdown:
	// the background workers and the server itself
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing page templates")
	}

	handler := httphandler.NewHandler(services, renderer, cfg.Session, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewSessionSweeper(storages.SessionRepository, workers.DefaultSweepInterval, log),
	)
	background.Run(ctx)

	srv.RunServer(ctx)
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
