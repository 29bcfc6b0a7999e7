// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the relay's HTTP surface.
//
// It exposes POST /send_message, which forwards a command to the bot and
// returns the correlated replies, together with the health and metrics
// endpoints. Tracing, access logging, bearer token checks and per-client
// rate limiting are handled here before a request reaches the service
// layer.
package http
