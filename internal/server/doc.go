// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the relay process: the HTTP listener, the background
// workers and the orderly release of the bot session on shutdown.
package server
