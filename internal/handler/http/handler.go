// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/ratelimit"
	"github.com/MKhiriev/botfather-relay/internal/service"
	"github.com/MKhiriev/botfather-relay/internal/utils"
	"github.com/MKhiriev/botfather-relay/internal/validators"
)

type Handler struct {
	services  *service.Services
	limiter   *ratelimit.Limiter
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator
	cfg       config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter *ratelimit.Limiter, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		limiter:   limiter,
		validator: validators.NewMessageValidator(),
		traceIDs:  utils.NewUUIDGenerator(),
		cfg:       cfg,
		logger:    logger,
	}
}
