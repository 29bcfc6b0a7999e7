// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// Selector validation errors. They are wrapped into the application
// validation error by callers.
var (
	ErrSelectorEmpty       = errors.New("must specify either button text or both row and col")
	ErrSelectorMixed       = errors.New("button text and row/col cannot be combined")
	ErrSelectorIncomplete  = errors.New("row and col must be supplied together")
	ErrSelectorNegativePos = errors.New("row and col must be non-negative")
	ErrSelectorBlankLabel  = errors.New("button text cannot be blank")
)

// ButtonSelector identifies a button inside a [ButtonGrid] either by label or
// by grid position. Use [ByLabel] or [ByPosition] to build one.
type ButtonSelector struct {
	Label string
	Row   *int
	Col   *int
}

// ByLabel selects the first button whose label matches text.
func ByLabel(text string) ButtonSelector {
	return ButtonSelector{Label: text}
}

// ByPosition selects the button at the given zero-based row and column.
func ByPosition(row, col int) ButtonSelector {
	return ButtonSelector{Row: &row, Col: &col}
}

// IsLabel reports whether the selector matches by label.
func (s ButtonSelector) IsLabel() bool {
	return s.Label != ""
}

// Validate checks that exactly one selection mode is used.
func (s ButtonSelector) Validate() error {
	hasPos := s.Row != nil || s.Col != nil
	switch {
	case s.Label != "" && hasPos:
		return ErrSelectorMixed
	case s.Label == "" && !hasPos:
		return ErrSelectorEmpty
	case s.Label != "" && strings.TrimPrefix(strings.TrimSpace(s.Label), "@") == "":
		return ErrSelectorBlankLabel
	case s.Label != "":
		return nil
	case s.Row == nil || s.Col == nil:
		return ErrSelectorIncomplete
	case *s.Row < 0 || *s.Col < 0:
		return ErrSelectorNegativePos
	}
	return nil
}

// String describes the selector the way it is echoed back in click results:
// the label as supplied, or "(row, col)".
func (s ButtonSelector) String() string {
	if s.Label != "" {
		return s.Label
	}
	if s.Row == nil || s.Col == nil {
		return "(?, ?)"
	}
	return fmt.Sprintf("(%d, %d)", *s.Row, *s.Col)
}
