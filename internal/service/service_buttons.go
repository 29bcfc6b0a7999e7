// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/retry"
	"github.com/MKhiriev/botfather-relay/internal/transport"
	"github.com/MKhiriev/botfather-relay/models"
)

type buttonService struct {
	session SessionService
	retry   *retry.Policy

	logger *logger.Logger
}

// NewButtonService builds the button resolver on top of session.
func NewButtonService(session SessionService, policy *retry.Policy, log *logger.Logger) ButtonService {
	return &buttonService{session: session, retry: policy, logger: log}
}

// ListButtons returns the message with the given ID, or the latest message
// when msgID is nil.
func (s *buttonService) ListButtons(ctx context.Context, msgID *int64) (models.Message, error) {
	var msg models.Message
	err := s.session.Do(ctx, func(ctx context.Context, t transport.Transport) error {
		var err error
		msg, err = s.target(ctx, t, msgID)
		return err
	})
	return msg, mapTransportError(err)
}

// Click resolves sel against a fresh snapshot of the target message and
// presses the button. Resolution failures are reported as an error
// ClickResult; transport and auth failures of the press itself are returned
// as errors.
func (s *buttonService) Click(ctx context.Context, msgID *int64, sel models.ButtonSelector) (models.ClickResult, error) {
	if err := sel.Validate(); err != nil {
		return models.ClickResult{}, fmt.Errorf("%w: %w", app.ErrValidation, err)
	}

	var result models.ClickResult
	err := s.session.Do(ctx, func(ctx context.Context, t transport.Transport) error {
		msg, err := s.target(ctx, t, msgID)
		switch {
		case errors.Is(err, errNoMessages):
			result = failedClick(0, sel, app.MsgNoMessages)
			return nil
		case errors.Is(err, transport.ErrMessageNotFound) && msgID == nil:
			result = failedClick(0, sel, app.MsgNoMessages)
			return nil
		case errors.Is(err, transport.ErrMessageNotFound):
			result = failedClick(*msgID, sel, app.MsgMessageNotFound)
			return nil
		case err != nil:
			return err
		}

		button, failure := resolve(msg.Buttons, sel)
		if failure != "" {
			result = failedClick(msg.ID, sel, failure)
			return nil
		}

		answer, err := retry.Do(ctx, s.retry, "click", func(ctx context.Context) (transport.ClickAnswer, error) {
			return t.Click(ctx, msg.ID, button.Data)
		})
		if err != nil {
			return err
		}

		result = models.ClickResult{
			MessageID: msg.ID,
			Button:    sel.String(),
			Result:    answer.String(),
			Status:    models.ClickStatusSuccess,
		}
		return nil
	})
	if err != nil {
		return models.ClickResult{}, mapTransportError(err)
	}

	recordClick(result.Status)
	s.logger.Debug().
		Int64("message_id", result.MessageID).
		Str("button", result.Button).
		Str("status", result.Status).
		Msg("button click resolved")
	return result, nil
}

var errNoMessages = errors.New("no messages in conversation")

func (s *buttonService) target(ctx context.Context, t transport.Transport, msgID *int64) (models.Message, error) {
	if msgID != nil {
		return retry.Do(ctx, s.retry, "get_message", func(ctx context.Context) (models.Message, error) {
			return t.GetMessage(ctx, *msgID)
		})
	}

	latest, err := retry.Do(ctx, s.retry, "fetch_latest", func(ctx context.Context) ([]models.Message, error) {
		return t.FetchLatest(ctx, 1)
	})
	if err != nil {
		return models.Message{}, err
	}
	if len(latest) == 0 {
		return models.Message{}, fmt.Errorf("%w: %w", app.ErrNotFound, errNoMessages)
	}
	return latest[len(latest)-1], nil
}

// resolve picks the button matching sel. It returns the failure detail when
// nothing matches.
func resolve(grid models.ButtonGrid, sel models.ButtonSelector) (models.Button, string) {
	if grid.Empty() {
		return models.Button{}, app.MsgNoButtons
	}

	if sel.IsLabel() {
		want := normalizeLabel(sel.Label)
		for _, row := range grid {
			for _, b := range row {
				if normalizeLabel(b.Label) == want {
					return b, ""
				}
			}
		}
		return models.Button{}, fmt.Sprintf(app.MsgButtonNotFound, sel.Label)
	}

	b, err := grid.At(*sel.Row, *sel.Col)
	switch {
	case errors.Is(err, models.ErrRowOutOfRange):
		return models.Button{}, fmt.Sprintf(app.MsgRowOutOfRange, *sel.Row)
	case errors.Is(err, models.ErrColumnOutOfRange):
		return models.Button{}, fmt.Sprintf(app.MsgColumnOutOfRange, *sel.Col)
	}
	return b, ""
}

// normalizeLabel makes "@MyBot", "mybot" and " MyBot " compare equal.
func normalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	label = strings.TrimPrefix(label, "@")
	return strings.ToLower(label)
}

func failedClick(msgID int64, sel models.ButtonSelector, detail string) models.ClickResult {
	return models.ClickResult{
		MessageID: msgID,
		Button:    sel.String(),
		Result:    detail,
		Status:    models.ClickStatusError,
		Reason:    app.ErrNotFound,
	}
}
