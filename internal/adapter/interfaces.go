// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running relay over HTTP.
//
// [RelayAdapter] is what the CLI's relay command uses to forward a message
// through POST /send_message instead of driving the bot session itself.
// Relay error responses are mapped onto the sentinels in errors.go so
// callers can use [errors.Is].
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/botfather-relay/models"
)

// RelayAdapter forwards messages to the bot through a relay.
type RelayAdapter interface {
	// SendMessage posts message to the relay and returns the bot's replies.
	SendMessage(ctx context.Context, message string) (models.SendMessageResponse, error)
}
