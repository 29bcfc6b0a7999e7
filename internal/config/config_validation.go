// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RateLimit <= 0 || cfg.Server.RateWindow <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.MaxReplies <= 0 || cfg.Server.ReplyWait < 0 {
		return ErrInvalidServerConfigs
	}

	switch strings.ToLower(cfg.Transport.Kind) {
	case TransportMemory:
	case TransportGateway:
		if cfg.Transport.GatewayAddress == "" || cfg.Transport.Peer == "" {
			return fmt.Errorf("%w: gateway address and peer are required", ErrInvalidTransportConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTransportConfigs, cfg.Transport.Kind)
	}

	switch cfg.Session.Prompt {
	case PromptTerminal, PromptNone:
	default:
		return fmt.Errorf("%w: unknown prompt %q", ErrInvalidSessionConfigs, cfg.Session.Prompt)
	}
	if cfg.Session.PollInterval <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Retry.MaxAttempts < 1 || cfg.Retry.Delay < 0 {
		return ErrInvalidRetryConfigs
	}

	return nil
}
