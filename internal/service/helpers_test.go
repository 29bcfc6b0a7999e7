// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/prompt"
	"github.com/MKhiriev/botfather-relay/internal/retry"
	"github.com/MKhiriev/botfather-relay/internal/transport"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const testPhone = "+10000000000"

// testPolicy never sleeps. Ordinary delays still honour ctx.
func testPolicy() *retry.Policy {
	return &retry.Policy{
		MaxAttempts: 3,
		Sleep:       func(time.Duration) {},
		Wait:        func(ctx context.Context, _ time.Duration) error { return ctx.Err() },
	}
}

type stack struct {
	session  SessionService
	messages MessageService
	buttons  ButtonService
}

func newStack(t transport.Transport, p prompt.CredentialPrompt) stack {
	policy := testPolicy()
	session := NewSessionService(t, p, policy, testPhone, logger.Nop())
	return stack{
		session:  session,
		messages: NewMessageService(session, policy, 5*time.Millisecond, logger.Nop()),
		buttons:  NewButtonService(session, policy, logger.Nop()),
	}
}

// staticPrompt answers with fixed values and counts the questions.
type staticPrompt struct {
	code, password       string
	codeAsked, passAsked int
}

func (p *staticPrompt) Code(context.Context) (string, error) {
	p.codeAsked++
	return p.code, nil
}

func (p *staticPrompt) Password(context.Context) (string, error) {
	p.passAsked++
	return p.password, nil
}

func ptr[T any](v T) *T { return &v }

func mustEnsureReady(t *testing.T, s SessionService) {
	t.Helper()
	require.NoError(t, s.EnsureReady(context.Background()))
}
