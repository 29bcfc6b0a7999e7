// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/botfather-relay/internal/utils"
	"github.com/MKhiriev/botfather-relay/models"
)

// health reports liveness and the session state. It never touches the
// transport, so it answers even while the session is busy.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:  "ok",
		Session: h.services.SessionService.State().String(),
	}
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}
