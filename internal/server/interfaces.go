// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the relay process.
type Server interface {
	// RunServer serves until ctx is done or a termination signal arrives,
	// then shuts everything down. It returns the first fatal error.
	RunServer(ctx context.Context) error
}
