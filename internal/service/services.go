// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/prompt"
	"github.com/MKhiriev/botfather-relay/internal/retry"
	"github.com/MKhiriev/botfather-relay/internal/transport"
)

type Services struct {
	SessionService SessionService
	MessageService MessageService
	ButtonService  ButtonService
}

func NewServices(t transport.Transport, p prompt.CredentialPrompt, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	policy := retry.NewPolicy(cfg.Retry, logger)
	session := NewSessionService(t, p, policy, cfg.Transport.Phone, logger)

	return &Services{
		SessionService: session,
		MessageService: NewMessageService(session, policy, cfg.Session.PollInterval, logger),
		ButtonService:  NewButtonService(session, policy, logger),
	}
}
