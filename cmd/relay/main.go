// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/handler"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/prompt"
	"github.com/MKhiriev/botfather-relay/internal/ratelimit"
	"github.com/MKhiriev/botfather-relay/internal/server"
	"github.com/MKhiriev/botfather-relay/internal/service"
	"github.com/MKhiriev/botfather-relay/internal/store"
	"github.com/MKhiriev/botfather-relay/internal/transport"
	"github.com/MKhiriev/botfather-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("botfather-relay").Fatal().Err(err).Msg("error getting configs")
	}

	log, closeLog, err := logger.NewConfiguredLogger("botfather-relay", cfg.Log, os.Stdout)
	if err != nil {
		logger.NewLogger("botfather-relay").Fatal().Err(err).Msg("error creating logger")
	}
	defer closeLog()

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("transport", cfg.Transport.Kind).Msg("received configs")

	db, err := store.NewConnectSQLite(context.Background(), cfg.Session.CacheDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening session cache")
	}
	defer db.Close()

	t, err := transport.New(cfg.Transport, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating transport")
	}

	credentials := prompt.New(cfg.Session.Prompt, store.NewNoteRepository(db, log), os.Stderr, log)
	services := service.NewServices(t, credentials, *cfg, log)
	limiter := ratelimit.New(cfg.Server.RateLimit, cfg.Server.RateWindow)

	handlers, err := handler.NewHandlers(services, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, services, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}
