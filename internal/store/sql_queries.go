// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const notesTable = "session_notes"

// SQLite takes "?" placeholders.
var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetNoteQuery(key string) (string, []any, error) {
	return sqlb.
		Select("note_value").
		From(notesTable).
		Where(sq.Eq{"note_key": key}).
		Limit(1).
		ToSql()
}

func buildPutNoteQuery(key, value string, at time.Time) (string, []any, error) {
	return sqlb.
		Insert(notesTable).
		Columns("note_key", "note_value", "updated_at").
		Values(key, value, at.UTC()).
		Suffix("ON CONFLICT(note_key) DO UPDATE SET note_value = excluded.note_value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteNoteQuery(key string) (string, []any, error) {
	return sqlb.
		Delete(notesTable).
		Where(sq.Eq{"note_key": key}).
		ToSql()
}
