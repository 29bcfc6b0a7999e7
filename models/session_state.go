// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the authentication state of the chat transport session.
type SessionState int

const (
	Unauthenticated SessionState = iota
	AwaitingCode
	AwaitingSecondFactor
	Authenticated
	Disconnected
)

var sessionStateNames = map[SessionState]string{
	Unauthenticated:      "unauthenticated",
	AwaitingCode:         "awaiting_code",
	AwaitingSecondFactor: "awaiting_second_factor",
	Authenticated:        "authenticated",
	Disconnected:         "disconnected",
}

// String implements fmt.Stringer.
func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}
	return "unknown"
}
