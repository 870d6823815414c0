package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-lockr/internal/client"
	"github.com/MKhiriev/go-lockr/internal/config"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("lockr-client")
	// command line arguments belong to the command tree, so the client is
	// configured from the environment and the config file only
	cfg, err := config.GetClientConfig(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	err = app.Run(ctx, os.Args[1:])
	if closeErr := app.Close(); closeErr != nil {
		log.Err(closeErr).Msg("close local storage")
	}
	if err != nil {
		stop()
		os.Exit(1)
	}
}
