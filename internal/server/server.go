// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/handler"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/ratelimit"
	"github.com/MKhiriev/botfather-relay/internal/service"
	"github.com/MKhiriev/botfather-relay/internal/workers"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	session    service.SessionService
	address    string

	// ready, when set, receives the bound listener address once serving.
	ready chan<- string

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, services *service.Services, limiter *ratelimit.Limiter, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}
	if services == nil || services.SessionService == nil {
		return nil, errNoSession
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers.NewWorkers(workers.NewSweeper(limiter, limiter.Window(), logger)),
		session:    services.SessionService,
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	// log in before accepting requests so an interactive code prompt
	// happens at startup, not inside the first request
	if err := s.session.EnsureReady(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("session is not ready yet, will retry on first request")
	}

	l, err := net.Listen("tcp", s.address)
	if err != nil {
		return errors.Join(fmt.Errorf("listen on %s: %w", s.address, err), s.session.Shutdown(context.Background()))
	}
	if s.ready != nil {
		s.ready <- l.Addr().String()
	}

	s.workers.Run(ctx)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(l)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
		err = nil
	case err = <-serveErr:
		stop()
	}

	return errors.Join(err, s.shutdown())
}

func (s *server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	httpErr := s.httpServer.Shutdown(ctx)
	s.workers.Wait()
	sessionErr := s.session.Shutdown(ctx)

	if err := errors.Join(httpErr, sessionErr); err != nil {
		s.logger.Err(err).Msg("error during shutdown")
		return err
	}
	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
