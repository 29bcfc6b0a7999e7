// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the relay and a
// Workers aggregate that starts them together and waits for them to stop.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper is implemented by stores that can drop expired entries.
// It returns the number of dropped entries.
type Sweeper interface {
	Sweep() int
}
