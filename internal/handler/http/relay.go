// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/utils"
	"github.com/MKhiriev/botfather-relay/models"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), &req); err != nil {
		err = fmt.Errorf("%w: %w", app.ErrValidation, err)
		log.Warn().Err(err).Str("func", "*Handler.sendMessage").Msg("rejected message")
		h.writeError(w, err)
		return
	}

	replies, err := h.services.MessageService.SendAndCollect(r.Context(), req.Message, h.cfg.MaxReplies, h.cfg.ReplyWait)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Msg("error forwarding message")
		h.writeError(w, err)
		return
	}

	resp := models.SendMessageResponse{
		Messages: make([]string, 0, len(replies)),
		Buttons:  make([]string, 0),
	}
	for _, msg := range replies {
		resp.Messages = append(resp.Messages, msg.Text)
		resp.Buttons = append(resp.Buttons, msg.Buttons.Labels()...)
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	utils.WriteError(w, err.Error(), statusFromError(err))
}
