// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"context"
	"errors"

	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/store"
)

// CodeNoteKey is the session note key holding the cached login code.
const CodeNoteKey = "auth_code"

// Cached remembers the login code in the session note, so it is asked for
// at most once. Second-factor secrets are never stored.
type Cached struct {
	next   CredentialPrompt
	notes  store.NoteRepository
	logger *logger.Logger
}

// NewCached wraps next with the code cache kept in notes.
func NewCached(next CredentialPrompt, notes store.NoteRepository, log *logger.Logger) *Cached {
	return &Cached{next: next, notes: notes, logger: log}
}

func (c *Cached) Code(ctx context.Context) (string, error) {
	code, err := c.notes.Get(ctx, CodeNoteKey)
	switch {
	case err == nil && code != "":
		c.logger.Debug().Msg("using cached login code")
		return code, nil
	case err != nil && !errors.Is(err, store.ErrNoteNotFound):
		c.logger.Warn().Err(err).Msg("error reading cached login code")
	}

	code, err = c.next.Code(ctx)
	if err != nil {
		return "", err
	}

	if err = c.notes.Put(ctx, CodeNoteKey, code); err != nil {
		c.logger.Warn().Err(err).Msg("error caching login code")
	}
	return code, nil
}

func (c *Cached) Password(ctx context.Context) (string, error) {
	return c.next.Password(ctx)
}

// Invalidate implements [Invalidator].
func (c *Cached) Invalidate(ctx context.Context) error {
	return c.notes.Delete(ctx, CodeNoteKey)
}
