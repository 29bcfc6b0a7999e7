// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metricRejected = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "botfather_relay",
	Name:      "rate_limit_rejections_total",
	Help:      "Requests rejected by the per-client rate limiter.",
})

func recordRejection() {
	metricRejected.Inc()
}
