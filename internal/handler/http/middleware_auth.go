// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/utils"
)

// auth enforces the configured bearer token. When no token is configured
// every request passes.
//
// A missing or malformed header is rejected with [app.MsgMissingBearerToken],
// a well-formed header with the wrong token with [app.MsgInvalidBearerToken].
// Both are 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.BearerToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		err := checkBearerToken(r.Header.Get("Authorization"), h.cfg.BearerToken)
		switch {
		case err == nil:
			next.ServeHTTP(w, r)
		case errors.Is(err, ErrTokenMismatch):
			log.Warn().Err(err).Msg("rejected request")
			utils.WriteError(w, app.MsgInvalidBearerToken, http.StatusUnauthorized)
		default:
			log.Warn().Err(err).Msg("rejected request")
			utils.WriteError(w, app.MsgMissingBearerToken, http.StatusUnauthorized)
		}
	})
}

// checkBearerToken validates an "Authorization: Bearer <token>" header
// against want in constant time.
func checkBearerToken(authHeader, want string) error {
	if authHeader == "" {
		return ErrEmptyAuthorizationHeader
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return ErrInvalidAuthorizationHeader
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(want)) != 1 {
		return ErrTokenMismatch
	}
	return nil
}
