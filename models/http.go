// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SendMessageRequest is the body of POST /send_message.
type SendMessageRequest struct {
	// Message is the command or text forwarded to the bot. It must contain
	// between 1 and 4096 characters after sanitization.
	Message string `json:"message"`
}

// SendMessageResponse is returned by POST /send_message on success.
type SendMessageResponse struct {
	// Messages holds the text of every correlated reply in chronological
	// order. It is never null: no replies yields an empty array.
	Messages []string `json:"messages"`

	// Buttons holds the labels of every inline button attached to the
	// replies, flattened in reply order and row-major within each reply.
	Buttons []string `json:"buttons"`
}

// ErrorResponse is the body of every non-2xx relay response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Session string `json:"session"`
}
