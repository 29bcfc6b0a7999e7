// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/utils"
)

// rateLimit admits at most cfg.RateLimit requests per window per client
// address. It must run after middleware.RealIP so proxied clients are told
// apart.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientIdentity(r)
		if !h.limiter.Admit(client) {
			logger.FromRequest(r).Warn().Str("client", client).Msg("rate limit exceeded")
			utils.WriteError(w, app.MsgRateLimitExceeded, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIdentity returns the host part of r.RemoteAddr, or the whole value
// when it carries no port.
func clientIdentity(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
