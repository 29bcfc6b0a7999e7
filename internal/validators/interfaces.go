// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation shared by the relay handlers and
// the CLI. Validation happens before anything reaches the chat transport.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may also normalize the value in place when given a pointer.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
