// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the small key-value "session note" that caches the
// login code between runs. It is a SQLite database managed with goose
// migrations and queried through squirrel-built statements.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import "context"

// NoteRepository stores string values by key.
type NoteRepository interface {
	// Get returns the value stored under key or [ErrNoteNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
