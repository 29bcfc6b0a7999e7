// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retry wraps transport calls with the relay's retry policy.
//
// Provider-mandated waits (flood waits) are honoured in full and never
// counted against the attempt budget. Unrecoverable authentication errors
// are surfaced immediately. Every other failure is retried a fixed number
// of times with a fixed delay and then surfaced as app.ErrTransport.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/transport"
)

// Kind tells the policy how to react to a failed attempt.
type Kind int

const (
	// Transient failures are retried up to the attempt ceiling.
	Transient Kind = iota
	// Throttle failures carry a mandatory wait and are retried uncounted.
	Throttle
	// Auth failures end the session and are never retried.
	Auth
	// Terminal failures are returned as they are.
	Terminal
)

// String returns the lowercase kind name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case Throttle:
		return "throttle"
	case Auth:
		return "auth"
	case Terminal:
		return "terminal"
	default:
		return "transient"
	}
}

// Signal is the classification of a single failed attempt.
type Signal struct {
	Kind Kind
	Wait time.Duration
}

// MinFloodWait is the shortest pause taken on a throttling signal. A flood
// wait without a usable duration is raised to it.
const MinFloodWait = time.Second

// Classify maps err onto a [Signal].
func Classify(err error) Signal {
	if wait, ok := transport.AsFloodWait(err); ok {
		return Signal{Kind: Throttle, Wait: max(wait, MinFloodWait)}
	}

	switch {
	case transport.IsAuthFatal(err):
		return Signal{Kind: Auth}
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, transport.ErrSecondFactorRequired),
		errors.Is(err, transport.ErrDisconnected),
		errors.Is(err, transport.ErrMessageNotFound),
		errors.Is(err, app.ErrValidation):
		return Signal{Kind: Terminal}
	}

	return Signal{Kind: Transient}
}

// Policy executes operations under the retry rules. The zero value is not
// usable; build one with [NewPolicy].
type Policy struct {
	// MaxAttempts is the total number of attempts for transient failures.
	MaxAttempts int
	// Delay is the pause between transient attempts.
	Delay time.Duration

	// Sleep blocks for a provider-mandated wait. It is not interruptible.
	Sleep func(d time.Duration)
	// Wait blocks for an ordinary retry delay and returns early with the
	// context error when ctx is done.
	Wait func(ctx context.Context, d time.Duration) error

	// OnAuthFailure, when set, is called once for every auth failure.
	OnAuthFailure func(err error)

	logger *logger.Logger
}

// NewPolicy builds a [Policy] from cfg with real sleeping.
func NewPolicy(cfg config.Retry, log *logger.Logger) *Policy {
	return &Policy{
		MaxAttempts: cfg.MaxAttempts,
		Delay:       cfg.Delay,
		Sleep:       time.Sleep,
		Wait:        waitContext,
		logger:      log,
	}
}

// Execute runs op until it succeeds or the policy gives up. name identifies
// the operation in logs and errors.
func (p *Policy) Execute(ctx context.Context, name string, op func(ctx context.Context) error) error {
	_, err := Do(ctx, p, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// Do is [Policy.Execute] for operations that return a value.
func Do[T any](ctx context.Context, p *Policy, name string, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	maxAttempts := max(p.MaxAttempts, 1)
	attempt := 0

	for {
		res, err := op(ctx)
		if err == nil {
			return res, nil
		}

		sig := Classify(err)
		recordAttempt(name, sig.Kind)

		switch sig.Kind {
		case Throttle:
			p.log().Warn().Str("op", name).Dur("wait", sig.Wait).Msg("flood wait requested, sleeping before retry")
			recordFloodWait(sig.Wait)
			p.Sleep(sig.Wait)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return zero, fmt.Errorf("%s: %w", name, ctxErr)
			}
			continue

		case Auth:
			p.log().Error().Err(err).Str("op", name).Msg("unrecoverable authentication error")
			if p.OnAuthFailure != nil {
				p.OnAuthFailure(err)
			}
			return zero, fmt.Errorf("%s: %w: %w", name, app.ErrAuth, err)

		case Terminal:
			return zero, fmt.Errorf("%s: %w", name, err)
		}

		attempt++
		if attempt >= maxAttempts {
			p.log().Error().Err(err).Str("op", name).Int("attempts", attempt).Msg("giving up")
			return zero, fmt.Errorf("%s failed after %d attempts: %w: %w", name, attempt, app.ErrTransport, err)
		}

		p.log().Warn().Err(err).Str("op", name).Int("attempt", attempt).Msg("transient error, retrying")
		if waitErr := p.Wait(ctx, p.Delay); waitErr != nil {
			return zero, fmt.Errorf("%s: %w", name, waitErr)
		}
	}
}

func (p *Policy) log() *logger.Logger {
	if p.logger == nil {
		return logger.Nop()
	}
	return p.logger
}

func waitContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
