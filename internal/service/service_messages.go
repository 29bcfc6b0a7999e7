// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/retry"
	"github.com/MKhiriev/botfather-relay/internal/transport"
	"github.com/MKhiriev/botfather-relay/models"
)

const defaultPollInterval = 500 * time.Millisecond

type messageService struct {
	session      SessionService
	retry        *retry.Policy
	pollInterval time.Duration
	now          func() time.Time

	logger *logger.Logger
}

// NewMessageService builds the reply correlator. pollInterval is the pause
// between fetches while waiting for replies.
func NewMessageService(session SessionService, policy *retry.Policy, pollInterval time.Duration, log *logger.Logger) MessageService {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &messageService{
		session:      session,
		retry:        policy,
		pollInterval: pollInterval,
		now:          time.Now,
		logger:       log,
	}
}

func (s *messageService) SendAndCollect(ctx context.Context, command string, maxReplies int, wait time.Duration) ([]models.Message, error) {
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("%w: %w", app.ErrValidation, ErrEmptyCommand)
	}
	if maxReplies < 1 {
		return nil, fmt.Errorf("%w: %w", app.ErrValidation, ErrInvalidMaxReplies)
	}

	var replies []models.Message
	err := s.session.Do(ctx, func(ctx context.Context, t transport.Transport) error {
		sent, err := s.send(ctx, t, command)
		if err != nil {
			return err
		}

		pending := models.PendingCommand{SentMessageID: sent.ID, SentAt: s.now()}
		replies, err = s.collect(ctx, t, pending, maxReplies, wait)
		return err
	})

	recordReplies(len(replies))
	return replies, mapTransportError(err)
}

func (s *messageService) Send(ctx context.Context, text string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, fmt.Errorf("%w: %w", app.ErrValidation, ErrEmptyCommand)
	}

	var sent models.Message
	err := s.session.Do(ctx, func(ctx context.Context, t transport.Transport) error {
		var err error
		sent, err = s.send(ctx, t, text)
		return err
	})
	return sent, mapTransportError(err)
}

func (s *messageService) LatestReplies(ctx context.Context, limit int) ([]models.Message, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: %w", app.ErrValidation, ErrInvalidLimit)
	}

	var msgs []models.Message
	err := s.session.Do(ctx, func(ctx context.Context, t transport.Transport) error {
		var err error
		msgs, err = retry.Do(ctx, s.retry, "fetch_latest", func(ctx context.Context) ([]models.Message, error) {
			return t.FetchLatest(ctx, limit)
		})
		return err
	})
	if err != nil {
		return nil, mapTransportError(err)
	}

	slices.SortFunc(msgs, byID)
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

func (s *messageService) send(ctx context.Context, t transport.Transport, text string) (models.Message, error) {
	sent, err := retry.Do(ctx, s.retry, "send", func(ctx context.Context) (models.Message, error) {
		return t.Send(ctx, text)
	})
	if err != nil {
		return models.Message{}, err
	}
	s.logger.Debug().Int64("message_id", sent.ID).Msg("command sent")
	return sent, nil
}

// collect polls for replies to pending until maxReplies are seen or wait
// elapses. On context cancellation the replies seen so far are returned
// together with the context error.
func (s *messageService) collect(ctx context.Context, t transport.Transport, pending models.PendingCommand, maxReplies int, wait time.Duration) ([]models.Message, error) {
	deadline := pending.SentAt.Add(wait)
	cursor := pending.SentMessageID
	seen := make(map[int64]struct{}, maxReplies)
	replies := make([]models.Message, 0, maxReplies)

	for {
		batch, err := retry.Do(ctx, s.retry, "fetch_since", func(ctx context.Context) ([]models.Message, error) {
			return t.FetchSince(ctx, cursor, maxReplies-len(replies))
		})
		if err != nil {
			return sortedReplies(replies), err
		}

		for _, msg := range batch {
			if !pending.Accepts(msg) {
				continue
			}
			if _, dup := seen[msg.ID]; dup {
				continue
			}
			seen[msg.ID] = struct{}{}
			replies = append(replies, msg)
			cursor = max(cursor, msg.ID)
		}

		if len(replies) >= maxReplies {
			return sortedReplies(replies)[:maxReplies], nil
		}

		remaining := deadline.Sub(s.now())
		if remaining <= 0 {
			s.logger.Debug().Int("replies", len(replies)).Msg("reply wait budget elapsed")
			return sortedReplies(replies), nil
		}

		if err = sleepContext(ctx, min(s.pollInterval, remaining)); err != nil {
			return sortedReplies(replies), err
		}
	}
}

func sortedReplies(msgs []models.Message) []models.Message {
	slices.SortFunc(msgs, byID)
	return msgs
}

func byID(a, b models.Message) int {
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
