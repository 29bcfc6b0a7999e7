// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a single chat message observed in the conversation with the bot.
//
// Messages are owned by the transport and are immutable once observed. ID is
// unique within the conversation and increases monotonically, so comparing
// IDs gives chronological order.
type Message struct {
	// ID is the conversation-scoped message identifier.
	ID int64 `json:"id"`

	// Text is the message body. It may be empty (e.g. a message that only
	// carries an inline keyboard).
	Text string `json:"text"`

	// Date is the server-side timestamp of the message.
	Date time.Time `json:"date"`

	// Buttons is the inline keyboard attached to the message, if any.
	// Row/column indices are valid only against this snapshot.
	Buttons ButtonGrid `json:"buttons,omitempty"`
}

// PendingCommand marks the correlation floor of one send-and-collect
// operation. It lives only for the duration of that operation.
type PendingCommand struct {
	// SentMessageID is the ID of the sent command. No message with an ID
	// less than or equal to it is ever treated as a reply.
	SentMessageID int64

	// SentAt is when the transport acknowledged the command.
	SentAt time.Time
}

// Accepts reports whether msg may be treated as a reply to the command.
func (p PendingCommand) Accepts(msg Message) bool {
	return msg.ID > p.SentMessageID
}
