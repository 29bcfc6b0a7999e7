// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/adapter"
	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/prompt"
	"github.com/MKhiriev/botfather-relay/internal/service"
	"github.com/MKhiriev/botfather-relay/internal/store"
	"github.com/MKhiriev/botfather-relay/internal/transport"
	"github.com/MKhiriev/botfather-relay/models"
)

const shutdownTimeout = 10 * time.Second

// ServicesFactory builds the service layer for one CLI invocation. The
// returned cleanup releases the session and its resources.
type ServicesFactory func(ctx context.Context) (*service.Services, func() error, error)

// RelayFactory builds a client for a running relay.
type RelayFactory func(address, token string, timeout time.Duration) (adapter.RelayAdapter, error)

// App holds everything a command needs: configuration, output streams and
// factories for the expensive dependencies, which are only built by the
// commands that use them.
type App struct {
	cfg         config.StructuredConfig
	stdout      io.Writer
	stderr      io.Writer
	buildInfo   models.AppBuildInfo
	newServices ServicesFactory
	newRelay    RelayFactory

	logger *logger.Logger
}

// Option customizes an [App].
type Option func(*App)

// WithServicesFactory replaces the default service wiring.
func WithServicesFactory(f ServicesFactory) Option {
	return func(a *App) { a.newServices = f }
}

// WithRelayFactory replaces the default relay client.
func WithRelayFactory(f RelayFactory) Option {
	return func(a *App) { a.newRelay = f }
}

// WithBuildInfo sets the build metadata printed by the version command.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(a *App) { a.buildInfo = info }
}

// NewApp builds an App. Without options the services talk to the configured
// transport and cache the login code in the session database.
func NewApp(cfg config.StructuredConfig, stdout, stderr io.Writer, log *logger.Logger, opts ...Option) *App {
	a := &App{
		cfg:       cfg,
		stdout:    stdout,
		stderr:    stderr,
		buildInfo: models.NewAppBuildInfo("", "", ""),
		logger:    log,
	}
	a.newServices = a.defaultServices
	a.newRelay = func(address, token string, timeout time.Duration) (adapter.RelayAdapter, error) {
		return adapter.NewHTTPRelayAdapter(address, token, timeout, log)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute runs the command line args (without the program name) and returns
// the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	err := a.root(ctx).Execute(args, a.stderr)
	switch {
	case err == nil, errors.Is(err, errHelpShown):
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return 1
}

// withServices builds the service layer, runs fn and releases the session
// whatever fn returns.
func (a *App) withServices(ctx context.Context, fn func(*service.Services) error) (err error) {
	services, cleanup, err := a.newServices(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cleanup(); cerr != nil {
			a.logger.Warn().Err(cerr).Msg("error releasing session")
		}
	}()

	return fn(services)
}

func (a *App) defaultServices(ctx context.Context) (*service.Services, func() error, error) {
	db, err := store.NewConnectSQLite(ctx, a.cfg.Session.CacheDSN, a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open session cache: %w", err)
	}

	t, err := transport.New(a.cfg.Transport, a.logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	notes := store.NewNoteRepository(db, a.logger)
	p := prompt.New(a.cfg.Session.Prompt, notes, a.stderr, a.logger)
	services := service.NewServices(t, p, a.cfg, a.logger)

	cleanup := func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(services.SessionService.Shutdown(shutdownCtx), db.Close())
	}
	return services, cleanup, nil
}

// Run is the entry point of the botfather binary.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, info models.AppBuildInfo) int {
	cfg, err := config.GetCLIConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log, closeLog, err := logger.NewConfiguredLogger("botfather", cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = closeLog() }()

	return NewApp(*cfg, stdout, stderr, log, WithBuildInfo(info)).Execute(ctx, args)
}
