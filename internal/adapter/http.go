// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/utils"
	"github.com/MKhiriev/botfather-relay/models"
)

type httpRelayAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRelayAdapter builds a [RelayAdapter] for the relay at address.
// token is sent as a bearer token when non-empty. It returns an error when
// address is empty or malformed.
func NewHTTPRelayAdapter(address, token string, timeout time.Duration, logger *logger.Logger) (RelayAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid relay address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if token = strings.TrimSpace(token); token != "" {
		client.SetAuthToken(token)
	}

	return &httpRelayAdapter{client: client, logger: logger}, nil
}

// SendMessage implements [RelayAdapter].
func (h *httpRelayAdapter) SendMessage(ctx context.Context, message string) (models.SendMessageResponse, error) {
	var out models.SendMessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.SendMessageRequest{Message: message}).
		SetResult(&out).
		Post("/send_message")
	if err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("error communicating with relay: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Msg("relay returned an error")
		return models.SendMessageResponse{}, err
	}
	if out.Messages == nil {
		return models.SendMessageResponse{}, fmt.Errorf("%w: 'messages' key not found", ErrInvalidResponse)
	}

	return out, nil
}
