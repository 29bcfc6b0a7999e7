// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricFailedAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "botfather_relay",
		Name:      "transport_failed_attempts_total",
		Help:      "Failed transport attempts by operation and classification.",
	}, []string{"op", "kind"})
	metricFloodWaitSeconds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "botfather_relay",
		Name:      "flood_wait_seconds_total",
		Help:      "Total seconds spent honouring provider flood waits.",
	})
)

func recordAttempt(op string, kind Kind) {
	metricFailedAttempts.WithLabelValues(op, kind.String()).Inc()
}

func recordFloodWait(d time.Duration) {
	if d > 0 {
		metricFloodWaitSeconds.Add(d.Seconds())
	}
}
