// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Position lookup errors returned by [ButtonGrid.At].
var (
	ErrRowOutOfRange    = errors.New("row out of range")
	ErrColumnOutOfRange = errors.New("column out of range")
)

// Button is a single inline keyboard control.
type Button struct {
	// Label is the text shown on the button.
	Label string `json:"label"`

	// Data is the opaque callback token understood only by the transport
	// and the bot. It is never shown to callers.
	Data []byte `json:"-"`
}

// ButtonGrid is an inline keyboard: an ordered sequence of rows, each an
// ordered sequence of buttons. Indices are zero-based.
type ButtonGrid [][]Button

// Empty reports whether the grid contains no buttons at all.
func (g ButtonGrid) Empty() bool {
	for _, row := range g {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// Labels returns all button labels in row-major order.
func (g ButtonGrid) Labels() []string {
	labels := make([]string, 0, len(g))
	for _, row := range g {
		for _, b := range row {
			labels = append(labels, b.Label)
		}
	}
	return labels
}

// LabelRows returns the labels keeping the row structure. Empty rows are
// skipped, and nil is returned for an empty grid.
func (g ButtonGrid) LabelRows() [][]string {
	var rows [][]string
	for _, row := range g {
		if len(row) == 0 {
			continue
		}
		labels := make([]string, 0, len(row))
		for _, b := range row {
			labels = append(labels, b.Label)
		}
		rows = append(rows, labels)
	}
	return rows
}

// At returns the button at the zero-based position. It tells an invalid row
// apart from an invalid column.
func (g ButtonGrid) At(row, col int) (Button, error) {
	if row < 0 || row >= len(g) {
		return Button{}, ErrRowOutOfRange
	}
	if col < 0 || col >= len(g[row]) {
		return Button{}, ErrColumnOutOfRange
	}
	return g[row][col], nil
}
