// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport defines the narrow capability the relay needs from the
// chat transport and ships two implementations of it.
//
// [Transport] is deliberately small: connect, authorize, send, fetch and
// click. Everything above it (session state, reply correlation, button
// resolution, retries) is written purely against this interface so it can
// be exercised with a test double.
//
// The gateway implementation ([NewGateway]) talks JSON over HTTP to a
// gateway process that owns the real MTProto session. The memory
// implementation ([NewMemory]) is a scripted bot used by tests and by the
// offline demo mode.
//
// Provider signals are reported as typed errors: [*FloodWaitError] carries
// the mandated wait, [ErrSecondFactorRequired] asks for the 2FA secret, and
// the auth-fatal sentinels are recognised by [IsAuthFatal].
package transport

import (
	"context"

	"github.com/MKhiriev/botfather-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport is an opaque chat transport bound to a single peer (the bot).
type Transport interface {
	// Connect opens the underlying connection. It is a no-op when already
	// connected.
	Connect(ctx context.Context) error

	// Disconnect closes the connection. It is a no-op when not connected.
	Disconnect(ctx context.Context) error

	// IsConnected reports whether the connection is open.
	IsConnected() bool

	// IsAuthorized reports whether the transport holds a valid
	// authorization for the configured account.
	IsAuthorized(ctx context.Context) (bool, error)

	// RequestCode asks the provider to deliver a login code to phone.
	RequestCode(ctx context.Context, phone string) error

	// SignIn completes login with the delivered code. It returns
	// [ErrSecondFactorRequired] when the account has a 2FA password.
	SignIn(ctx context.Context, phone, code string) error

	// SignInPassword completes login with the 2FA secret.
	SignInPassword(ctx context.Context, password string) error

	// Send sends text to the peer and returns the sent message as stored by
	// the provider.
	Send(ctx context.Context, text string) (models.Message, error)

	// FetchSince returns at most limit messages with ID strictly greater
	// than minID, oldest first.
	FetchSince(ctx context.Context, minID int64, limit int) ([]models.Message, error)

	// FetchLatest returns the newest limit messages, oldest first.
	FetchLatest(ctx context.Context, limit int) ([]models.Message, error)

	// GetMessage returns a fresh snapshot of one message. It returns
	// [ErrMessageNotFound] when id does not exist.
	GetMessage(ctx context.Context, id int64) (models.Message, error)

	// Click presses the inline button identified by its callback token on
	// message messageID and returns the bot's acknowledgement.
	Click(ctx context.Context, messageID int64, data []byte) (ClickAnswer, error)
}
