// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the interactive core of the relay: the session
// state machine, request/reply correlation and inline button resolution.
// Every transport call goes through the retry policy, and every operation on
// the conversation is serialized by the session.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/transport"
	"github.com/MKhiriev/botfather-relay/models"
)

// SessionService owns the authentication state machine and serializes all
// work on the single transport session.
type SessionService interface {
	// EnsureReady brings the session to Authenticated or fails with an
	// error wrapping app.ErrAuth or app.ErrSession.
	EnsureReady(ctx context.Context) error

	// Do runs fn exclusively on a ready session.
	Do(ctx context.Context, fn func(ctx context.Context, t transport.Transport) error) error

	// Shutdown releases the transport connection. It is idempotent.
	Shutdown(ctx context.Context) error

	// State returns the current session state.
	State() models.SessionState
}

// MessageService sends commands and correlates the bot's replies.
type MessageService interface {
	// SendAndCollect sends command and waits up to wait for at most
	// maxReplies replies, returned oldest first. No replies is not an error.
	SendAndCollect(ctx context.Context, command string, maxReplies int, wait time.Duration) ([]models.Message, error)

	// Send sends text without waiting for replies.
	Send(ctx context.Context, text string) (models.Message, error)

	// LatestReplies returns the newest limit messages, oldest first.
	LatestReplies(ctx context.Context, limit int) ([]models.Message, error)
}

// ButtonService discovers and presses inline buttons.
type ButtonService interface {
	// ListButtons returns the snapshot of message msgID, or of the latest
	// message when msgID is nil. A message without buttons is not an error.
	ListButtons(ctx context.Context, msgID *int64) (models.Message, error)

	// Click resolves sel against the message and presses the button.
	// Resolution failures are reported in the result, not as an error.
	Click(ctx context.Context, msgID *int64, sel models.ButtonSelector) (models.ClickResult, error)
}
