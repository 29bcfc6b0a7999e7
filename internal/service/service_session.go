// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/prompt"
	"github.com/MKhiriev/botfather-relay/internal/retry"
	"github.com/MKhiriev/botfather-relay/internal/transport"
	"github.com/MKhiriev/botfather-relay/models"
)

// allowedTransitions lists the states reachable from each state. Moving to
// Unauthenticated is always allowed (fatal auth errors) and so is moving to
// Disconnected (connection loss or shutdown).
var allowedTransitions = map[models.SessionState][]models.SessionState{
	models.Unauthenticated:      {models.AwaitingCode, models.Authenticated},
	models.AwaitingCode:         {models.AwaitingSecondFactor, models.Authenticated},
	models.AwaitingSecondFactor: {models.Authenticated},
	models.Authenticated:        {},
	models.Disconnected:         {models.Authenticated},
}

type sessionService struct {
	transport transport.Transport
	prompt    prompt.CredentialPrompt
	retry     *retry.Policy
	phone     string

	// sem serializes logins and operations; a channel lets waiters give up
	// when their context ends.
	sem    chan struct{}
	closed bool

	stateMu sync.RWMutex
	state   models.SessionState

	logger *logger.Logger
}

// NewSessionService builds the session on top of t. The retry policy's auth
// failure hook is bound to the session so a fatal auth error anywhere marks
// it unauthenticated.
func NewSessionService(t transport.Transport, p prompt.CredentialPrompt, policy *retry.Policy, phone string, log *logger.Logger) SessionService {
	s := &sessionService{
		transport: t,
		prompt:    p,
		retry:     policy,
		phone:     phone,
		sem:       make(chan struct{}, 1),
		state:     models.Unauthenticated,
		logger:    log,
	}
	policy.OnAuthFailure = s.onAuthFailure
	recordState(s.state)
	return s
}

func (s *sessionService) State() models.SessionState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

func (s *sessionService) EnsureReady(ctx context.Context) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	return s.ensureReadyLocked(ctx)
}

func (s *sessionService) Do(ctx context.Context, fn func(ctx context.Context, t transport.Transport) error) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	if err := s.ensureReadyLocked(ctx); err != nil {
		return err
	}

	err := fn(ctx, s.transport)
	if errors.Is(err, transport.ErrDisconnected) {
		s.logger.Warn().Err(err).Msg("transport reported a disconnect")
		s.transition(models.Disconnected)
	}
	return err
}

func (s *sessionService) Shutdown(ctx context.Context) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.transition(models.Disconnected)

	if err := s.transport.Disconnect(ctx); err != nil {
		s.logger.Err(err).Msg("error disconnecting transport")
		return fmt.Errorf("%w: disconnect: %w", app.ErrSession, err)
	}
	s.logger.Info().Msg("session shut down")
	return nil
}

func (s *sessionService) ensureReadyLocked(ctx context.Context) error {
	if s.closed {
		return fmt.Errorf("%w: %w", app.ErrSession, ErrSessionClosed)
	}
	if s.State() == models.Authenticated && s.transport.IsConnected() {
		return nil
	}

	if !s.transport.IsConnected() {
		if err := s.retry.Execute(ctx, "connect", s.transport.Connect); err != nil {
			return s.sessionError("connect", err)
		}
	}

	authorized, err := retry.Do(ctx, s.retry, "is_authorized", s.transport.IsAuthorized)
	if err != nil {
		return s.sessionError("authorization check", err)
	}
	if authorized {
		s.transition(models.Authenticated)
		return nil
	}

	// the stored authorization is gone; start over with code entry
	s.transition(models.Unauthenticated)
	return s.login(ctx)
}

func (s *sessionService) login(ctx context.Context) error {
	if s.phone == "" {
		return fmt.Errorf("%w: %w", app.ErrAuth, ErrNoPhone)
	}

	s.transition(models.AwaitingCode)
	err := s.retry.Execute(ctx, "request_code", func(ctx context.Context) error {
		return s.transport.RequestCode(ctx, s.phone)
	})
	if err != nil {
		return s.authError("request code", err)
	}

	code, err := s.prompt.Code(ctx)
	if err != nil {
		return s.authError("login code unavailable", err)
	}

	err = s.retry.Execute(ctx, "sign_in", func(ctx context.Context) error {
		return s.transport.SignIn(ctx, s.phone, code)
	})
	switch {
	case err == nil:
		s.transition(models.Authenticated)
		return nil
	case errors.Is(err, transport.ErrSecondFactorRequired):
		s.transition(models.AwaitingSecondFactor)
		return s.secondFactor(ctx)
	case errors.Is(err, transport.ErrPhoneCodeInvalid):
		s.invalidateCode(ctx)
	}
	return s.authError("sign in", err)
}

func (s *sessionService) secondFactor(ctx context.Context) error {
	secret, err := s.prompt.Password(ctx)
	if err != nil {
		return s.authError("second factor unavailable", err)
	}

	err = s.retry.Execute(ctx, "sign_in_password", func(ctx context.Context) error {
		return s.transport.SignInPassword(ctx, secret)
	})
	if err != nil {
		return s.authError("second factor sign in", err)
	}

	s.transition(models.Authenticated)
	return nil
}

func (s *sessionService) invalidateCode(ctx context.Context) {
	inv, ok := s.prompt.(prompt.Invalidator)
	if !ok {
		return
	}
	if err := inv.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("error dropping cached login code")
	}
}

// authError moves the session back to Unauthenticated and makes sure the
// returned error wraps app.ErrAuth.
func (s *sessionService) authError(step string, err error) error {
	s.transition(models.Unauthenticated)
	if errors.Is(err, app.ErrAuth) {
		return fmt.Errorf("%s: %w", step, err)
	}
	return fmt.Errorf("%w: %s: %w", app.ErrAuth, step, err)
}

func (s *sessionService) sessionError(step string, err error) error {
	if errors.Is(err, app.ErrAuth) {
		return fmt.Errorf("%s: %w", step, err)
	}
	return fmt.Errorf("%w: %s: %w", app.ErrSession, step, err)
}

func (s *sessionService) onAuthFailure(err error) {
	s.logger.Warn().Err(err).Msg("authorization lost")
	s.transition(models.Unauthenticated)
}

// transition moves the session to state to. Disallowed transitions are
// logged and ignored.
func (s *sessionService) transition(to models.SessionState) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	from := s.state
	if from == to {
		return
	}
	if !canTransition(from, to) {
		s.logger.Error().Err(ErrInvalidTransition).
			Str("from", from.String()).Str("to", to.String()).Msg("session state unchanged")
		return
	}

	s.state = to
	recordState(to)
	s.logger.Info().Str("from", from.String()).Str("to", to.String()).Msg("session state changed")
}

func canTransition(from, to models.SessionState) bool {
	if to == models.Unauthenticated || to == models.Disconnected {
		return true
	}
	return slices.Contains(allowedTransitions[from], to)
}

func (s *sessionService) lock(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *sessionService) unlock() {
	<-s.sem
}
