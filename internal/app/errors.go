// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

// Error taxonomy. Callers wrap these with fmt.Errorf("...: %w", ...) and
// consumers match them with errors.Is.
var (
	// ErrValidation marks bad input. It never reaches the transport.
	ErrValidation = errors.New("validation error")

	// ErrAuth marks an unrecoverable authentication failure. The session
	// must be re-authenticated before further use.
	ErrAuth = errors.New("authentication error")

	// ErrRateLimited marks an admission rejection. The caller should back
	// off and retry later.
	ErrRateLimited = errors.New("rate limited")

	// ErrTransport marks a transport failure that survived the retry policy.
	ErrTransport = errors.New("transport error")

	// ErrNotFound marks a button or message selector that did not resolve.
	ErrNotFound = errors.New("not found")

	// ErrSession marks a session that could not be brought to a usable
	// state for reasons other than authentication (e.g. connect failure).
	ErrSession = errors.New("session error")
)
