// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import "fmt"

// ClickAnswer is the bot's acknowledgement of a callback button press.
type ClickAnswer struct {
	// Text is the notification text, if the bot sent one.
	Text string `json:"text,omitempty"`

	// Alert reports whether the text should be shown as a modal alert.
	Alert bool `json:"alert,omitempty"`

	// URL is set when the bot answered with a URL to open.
	URL string `json:"url,omitempty"`
}

// String returns the answer text, falling back to a description of the
// acknowledgement when the bot answered without text.
func (a ClickAnswer) String() string {
	if a.Text != "" {
		return a.Text
	}
	if a.URL != "" {
		return fmt.Sprintf("callback answer (url=%s)", a.URL)
	}
	return fmt.Sprintf("callback answer (alert=%t, no text)", a.Alert)
}
