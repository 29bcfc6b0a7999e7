// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the bearer token middleware when parsing the
// "Authorization" HTTP header.
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header does not
	// use the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the Bearer scheme carries no token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrTokenMismatch is returned when the token differs from the
	// configured one.
	ErrTokenMismatch = errors.New("bearer token mismatch")
)
