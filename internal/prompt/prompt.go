// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prompt obtains login codes and second-factor secrets out of band.
// The session state machine only sees the [CredentialPrompt] interface, so
// tests never block on console input.
package prompt

//go:generate mockgen -source=prompt.go -destination=../mock/prompt_mock.go -package=mock

import (
	"context"
	"errors"
)

// ErrPromptDisabled is returned by [None] and by any prompt that cannot ask.
var ErrPromptDisabled = errors.New("interactive credential entry is disabled")

// CredentialPrompt supplies credentials during login.
type CredentialPrompt interface {
	// Code returns the login code sent to the account.
	Code(ctx context.Context) (string, error)
	// Password returns the second-factor secret.
	Password(ctx context.Context) (string, error)
}

// Invalidator is implemented by prompts that cache the code. Invalidate
// drops the cached value after the provider rejected it.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// None refuses to supply credentials. It is used by the headless relay.
type None struct{}

func (None) Code(context.Context) (string, error)     { return "", ErrPromptDisabled }
func (None) Password(context.Context) (string, error) { return "", ErrPromptDisabled }
