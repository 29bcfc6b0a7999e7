// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the built-in configuration. It is merged last, so every
// other source overrides it.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    "127.0.0.1:57431",
			RateLimit:      10,
			RateWindow:     60 * time.Second,
			RequestTimeout: 60 * time.Second,
			MaxReplies:     3,
			ReplyWait:      5 * time.Second,
		},
		Transport: Transport{
			Kind:           TransportGateway,
			RequestTimeout: 30 * time.Second,
			Peer:           "@BotFather",
			SessionName:    "botfather_session",
		},
		Session: Session{
			CacheDSN:     "botfather_session.db",
			Prompt:       PromptTerminal,
			PollInterval: 500 * time.Millisecond,
		},
		Retry: Retry{
			MaxAttempts: 3,
			Delay:       2 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
	}
}
