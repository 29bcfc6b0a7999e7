// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-wide error taxonomy and the
// human-readable messages shared by the relay handlers and the CLI.
//
// Every failure that leaves the core is wrapped around exactly one of the
// Err* sentinels, so the HTTP layer and the CLI can classify it with
// [errors.Is] regardless of where it originated.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgEmptyMessage is returned when the message is empty after
	// sanitization.
	MsgEmptyMessage = "message cannot be empty"

	// MsgMessageTooLong is returned when the message exceeds the transport
	// limit.
	MsgMessageTooLong = "message is too long"

	// MsgRateLimitExceeded is returned with HTTP 429.
	MsgRateLimitExceeded = "rate limit exceeded"

	// MsgInvalidBearerToken is returned when the bearer token does not match
	// the configured one.
	MsgInvalidBearerToken = "invalid bearer token"

	// MsgMissingBearerToken is returned when a token is configured but the
	// request carries no usable Authorization header.
	MsgMissingBearerToken = "invalid or missing bearer token"

	// MsgNoButtons is the click result detail for a message without an
	// inline keyboard.
	MsgNoButtons = "Message has no buttons"

	// MsgMessageNotFound is the click result detail when the target message
	// does not exist.
	MsgMessageNotFound = "Message not found"

	// MsgNoMessages is the click result detail when the conversation is
	// empty and no message ID was supplied.
	MsgNoMessages = "No messages found"

	// MsgButtonNotFound is the click result detail when no label matched.
	// It takes the label as supplied.
	MsgButtonNotFound = "Button with text '%s' not found"

	// MsgRowOutOfRange and MsgColumnOutOfRange are the click result details
	// for a position outside the grid. They take the offending index.
	MsgRowOutOfRange    = "Row %d out of range"
	MsgColumnOutOfRange = "Column %d out of range"
)
