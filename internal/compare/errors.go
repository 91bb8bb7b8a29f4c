// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package compare

import "errors"

// ErrNoDataAvailable signals that none of the requested entities resolve
// to any data for the operation. It propagates uncached and maps to a 404
// at the API boundary.
var ErrNoDataAvailable = errors.New("no data available for the requested entities")

// ValidationError reports a malformed comparison request. Validation runs
// before any cache or database access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
