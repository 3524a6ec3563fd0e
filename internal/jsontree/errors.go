// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jsontree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned if the input contains no JSON value at all.
	ErrEmptyInput = errors.New("input is empty or contains only whitespace")

	// ErrInvalidJSON is returned if the input is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrTrailingData is returned if there is more than one JSON value in the
	// input.
	ErrTrailingData = errors.New("trailing data after JSON value")

	// ErrTooDeep is returned if the input nests deeper than [MaxDepth].
	ErrTooDeep = errors.New("nesting too deep")
)

// SyntaxError records a malformed document and the position the parser
// stopped at. Line and Column are 1-based. Column counts bytes. Both are 0
// if the position is unknown.
type SyntaxError struct {
	Line   int
	Column int
	Err    error
}

// Error implements the [error] interface.
func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("syntax error: %v", e.Err)
	}

	return fmt.Sprintf("syntax error at line %d, column %d: %v",
		e.Line, e.Column, e.Err)
}

// Is implements the [errors.Is] interface.
func (*SyntaxError) Is(other error) bool {
	_, ok := other.(*SyntaxError)
	return ok
}

// Unwrap returns [ErrInvalidJSON] and the underlying parser error.
func (e *SyntaxError) Unwrap() []error {
	return []error{ErrInvalidJSON, e.Err}
}
