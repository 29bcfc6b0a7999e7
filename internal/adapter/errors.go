// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("relay rejected the request")
	ErrUnauthorized        = errors.New("relay unauthorized")
	ErrRateLimited         = errors.New("relay rate limit exceeded")
	ErrInternalServerError = errors.New("relay internal error")
	ErrInvalidResponse     = errors.New("invalid relay response")
)
