// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Click result statuses.
const (
	ClickStatusSuccess = "success"
	ClickStatusError   = "error"
)

// ClickResult is the outcome of a button click. A resolution failure (no
// buttons, unmatched label, index out of range) is reported as a result with
// [ClickStatusError] rather than as a Go error.
type ClickResult struct {
	// MessageID is the message the click was resolved against. Zero when no
	// message could be found.
	MessageID int64 `json:"id"`

	// Button echoes the selector description for confirmation.
	Button string `json:"button"`

	// Result is the bot's click acknowledgement on success, or the failure
	// detail on error.
	Result string `json:"result"`

	// Status is either [ClickStatusSuccess] or [ClickStatusError].
	Status string `json:"status"`

	// Reason carries the classified cause of an error result so callers can
	// use errors.Is. It is not serialized.
	Reason error `json:"-"`
}

// OK reports whether the click succeeded.
func (r ClickResult) OK() bool {
	return r.Status == ClickStatusSuccess
}
