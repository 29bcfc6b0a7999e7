// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/ratelimit"
	"github.com/MKhiriev/botfather-relay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	limiter := ratelimit.New(10, time.Minute)

	h, err := NewHandlers(&service.Services{}, limiter, config.Server{HTTPAddress: ":57431"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, ratelimit.New(10, time.Minute), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_NoLimiter(t *testing.T) {
	_, err := NewHandlers(&service.Services{}, nil, config.Server{HTTPAddress: ":57431"}, logger.Nop())
	assert.ErrorIs(t, err, errNoRateLimiter)
}
