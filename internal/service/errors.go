// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid session state transition")
	ErrSessionClosed     = errors.New("session is shut down")
	ErrNoPhone           = errors.New("no phone number configured for login")

	ErrEmptyCommand      = errors.New("command cannot be empty")
	ErrInvalidMaxReplies = errors.New("max replies must be at least 1")
	ErrInvalidLimit      = errors.New("limit must be at least 1")
)
