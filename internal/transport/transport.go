// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"fmt"

	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/logger"
)

// New builds the transport selected by cfg.Kind.
func New(cfg config.Transport, log *logger.Logger) (Transport, error) {
	switch cfg.Kind {
	case config.TransportGateway:
		return NewGateway(cfg, log)
	case config.TransportMemory:
		log.Warn().Msg("using the in-memory demo bot, no real messages will be sent")
		return NewBotFatherDemo(), nil
	default:
		return nil, fmt.Errorf("unknown transport kind %q", cfg.Kind)
	}
}
