// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/botfather-relay/models"
)

// MaxMessageLength is the longest message, in characters, the chat
// transport accepts.
const MaxMessageLength = 4096

// Field names accepted by the message validator.
const (
	// FieldMessage targets the text of a SendMessageRequest.
	FieldMessage = "message"
	// FieldSelector targets a ButtonSelector.
	FieldSelector = "selector"
)

type messageValidator struct{}

// NewMessageValidator returns the validator for relay requests and button
// selectors. For *models.SendMessageRequest the message is sanitized in
// place before it is checked.
func NewMessageValidator() Validator {
	return &messageValidator{}
}

func (v *messageValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch val := value.(type) {
	case *models.SendMessageRequest:
		return v.validateRequest(val, fields...)
	case models.ButtonSelector:
		return v.validateSelector(val, fields...)
	case *models.ButtonSelector:
		return v.validateSelector(*val, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (v *messageValidator) validateRequest(req *models.SendMessageRequest, fields ...string) error {
	for _, f := range withDefault(fields, FieldMessage) {
		if f != FieldMessage {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	req.Message = SanitizeMessage(req.Message)
	if req.Message == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(req.Message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

func (v *messageValidator) validateSelector(sel models.ButtonSelector, fields ...string) error {
	for _, f := range withDefault(fields, FieldSelector) {
		if f != FieldSelector {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return sel.Validate()
}

// SanitizeMessage strips control characters other than newline and tab and
// trims surrounding whitespace.
func SanitizeMessage(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == utf8.RuneError {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

func withDefault(fields []string, def string) []string {
	if len(fields) == 0 {
		return []string{def}
	}
	return fields
}
