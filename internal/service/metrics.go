// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/botfather-relay/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var allStates = []models.SessionState{
	models.Unauthenticated,
	models.AwaitingCode,
	models.AwaitingSecondFactor,
	models.Authenticated,
	models.Disconnected,
}

var (
	metricSessionState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "botfather_relay",
		Name:      "session_state",
		Help:      "1 for the current session state, 0 for the others.",
	}, []string{"state"})
	metricRepliesCollected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "botfather_relay",
		Name:      "replies_collected_total",
		Help:      "Bot replies correlated to sent commands.",
	})
	metricClicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "botfather_relay",
		Name:      "button_clicks_total",
		Help:      "Button click attempts by result status.",
	}, []string{"status"})
)

func recordState(state models.SessionState) {
	for _, s := range allStates {
		v := 0.0
		if s == state {
			v = 1
		}
		metricSessionState.WithLabelValues(s.String()).Set(v)
	}
}

func recordReplies(n int) {
	if n > 0 {
		metricRepliesCollected.Add(float64(n))
	}
}

func recordClick(status string) {
	metricClicks.WithLabelValues(status).Inc()
}
