// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/logger"
)

// noteRepository is the SQLite-backed implementation of [NoteRepository].
type noteRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] on top of db.
func NewNoteRepository(db *DB, log *logger.Logger) NoteRepository {
	return &noteRepository{db: db, logger: log, now: time.Now}
}

func (r *noteRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetNoteQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoteNotFound
		}
		r.logger.Err(err).Str("func", "*noteRepository.Get").Str("key", key).Msg("error reading note")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *noteRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := buildPutNoteQuery(key, value, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*noteRepository.Put").Str("key", key).Msg("error saving note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *noteRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteNoteQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*noteRepository.Delete").Str("key", key).Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
