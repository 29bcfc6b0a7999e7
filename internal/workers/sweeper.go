// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/logger"
)

type sweeperWorker struct {
	target   Sweeper
	interval time.Duration
	logger   *logger.Logger
}

// NewSweeper returns a worker that calls target.Sweep every interval. If
// interval is zero or negative it defaults to one minute.
func NewSweeper(target Sweeper, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &sweeperWorker{target: target, interval: interval, logger: log}
}

func (s *sweeperWorker) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if dropped := s.target.Sweep(); dropped > 0 {
				s.logger.Debug().Int("dropped", dropped).Msg("swept idle rate limit windows")
			}
		}
	}
}
