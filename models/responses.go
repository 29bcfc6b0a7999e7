// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SentMessage is printed by the send-message command.
type SentMessage struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Reply is one entry of the get-replies output. Buttons keeps the row
// structure of the inline keyboard and is null when there is none.
type Reply struct {
	ID      int64      `json:"id"`
	Text    string     `json:"text"`
	Buttons [][]string `json:"buttons"`
}

// ButtonListing is printed by the list-buttons command.
type ButtonListing struct {
	ID      int64      `json:"id"`
	Buttons [][]string `json:"buttons"`
}

// NewReply converts an observed message into its CLI representation.
func NewReply(msg Message) Reply {
	return Reply{ID: msg.ID, Text: msg.Text, Buttons: msg.Buttons.LabelRows()}
}
