// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the relay's inbound transports.
package handler

import (
	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/handler/http"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/ratelimit"
	"github.com/MKhiriev/botfather-relay/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, limiter *ratelimit.Limiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if limiter == nil {
		return nil, errNoRateLimiter
	}

	return &Handlers{HTTP: http.NewHandler(services, limiter, cfg, logger)}, nil
}
