package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-db-config/internal/app"
	"github.com/MKhiriev/go-db-config/internal/config"
	"github.com/MKhiriev/go-db-config/internal/logger"
	"github.com/MKhiriev/go-db-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	environ := env.ToMap(os.Environ())

	log := logger.NewLoggerTo(os.Stderr, "dbconf")
	cfg, err := config.GetStructuredConfig(os.Args[1:], environ)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	printBuildInfo(log, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	log.Debug().
		Str("command", cfg.Command).
		Str("config", cfg.Source.ConfigFile).
		Bool("url", cfg.DatabaseURL != "").
		Str("env", cfg.Source.Env).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = app.NewApp(cfg, environ, os.Stdout, log).Run(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "dbconf:", err)
		os.Exit(1)
	}
}

func printBuildInfo(log *logger.Logger, info models.AppBuildInfo) {
	log.Debug().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg(info.String())
}
