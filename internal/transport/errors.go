// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"errors"
	"fmt"
	"time"
)

// FloodWaitError is the provider's throttling signal. Wait is the mandatory
// delay before the same operation may be retried.
type FloodWaitError struct {
	Wait time.Duration
}

// Error implements error.
func (e *FloodWaitError) Error() string {
	return fmt.Sprintf("flood wait: retry after %s", e.Wait)
}

// Provider signals that are not throttling.
var (
	// ErrSecondFactorRequired is returned by SignIn when the account is
	// protected by a 2FA password.
	ErrSecondFactorRequired = errors.New("second factor required")

	// ErrPhoneCodeInvalid is returned when the login code is wrong or
	// expired.
	ErrPhoneCodeInvalid = errors.New("phone code invalid")

	// ErrSessionRevoked is returned when the authorization was terminated
	// from another device.
	ErrSessionRevoked = errors.New("session revoked")

	// ErrUserDeactivated is returned when the account was deleted or banned.
	ErrUserDeactivated = errors.New("user deactivated")

	// ErrAuthKeyUnregistered is returned when the provider no longer
	// recognises the stored authorization key.
	ErrAuthKeyUnregistered = errors.New("auth key unregistered")

	// ErrDisconnected is returned when an operation is attempted on a
	// dropped connection.
	ErrDisconnected = errors.New("transport disconnected")

	// ErrMessageNotFound is returned by GetMessage for unknown IDs.
	ErrMessageNotFound = errors.New("message not found")
)

var authFatal = []error{
	ErrPhoneCodeInvalid,
	ErrSessionRevoked,
	ErrUserDeactivated,
	ErrAuthKeyUnregistered,
}

// IsAuthFatal reports whether err is an unrecoverable authentication signal
// that must not be retried.
func IsAuthFatal(err error) bool {
	for _, target := range authFatal {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// AsFloodWait extracts the mandated wait from err.
func AsFloodWait(err error) (time.Duration, bool) {
	var fw *FloodWaitError
	if errors.As(err, &fw) {
		return fw.Wait, true
	}
	return 0, false
}
