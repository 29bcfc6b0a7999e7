// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/botfather-relay/internal/app"
)

// errorStatusMap is checked in order; the first matching sentinel wins.
// Auth failures of the relay's own session are server-side problems, so
// app.ErrAuth maps to 500 and only a bad Authorization header yields 401.
var errorStatusMap = []struct {
	target error
	status int
}{
	{app.ErrValidation, http.StatusBadRequest},
	{app.ErrNotFound, http.StatusBadRequest},
	{app.ErrRateLimited, http.StatusTooManyRequests},
	{app.ErrAuth, http.StatusInternalServerError},
	{app.ErrSession, http.StatusInternalServerError},
	{app.ErrTransport, http.StatusBadRequest},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
