// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"errors"
	"strings"
)

// Error kinds surfaced by the storage and auth layers. Handlers map these to
// HTTP status codes; raw driver errors are logged but never leave the
// component boundary.
var (
	// ErrNotFound means no matching row exists.
	ErrNotFound = errors.New("not found")

	// ErrNoMatch means a credential or token did not match any user.
	ErrNoMatch = errors.New("no matching credentials")

	// ErrMalformedEvent means an event failed validation (bad event type).
	ErrMalformedEvent = errors.New("malformed event")

	// ErrDuplicateVote means the (user, event) pair already voted.
	ErrDuplicateVote = errors.New("duplicate vote")

	// ErrCreationFailed means an insert produced no generated key or hit a
	// uniqueness conflict.
	ErrCreationFailed = errors.New("creation failed")

	// ErrStoreUnavailable means the backing store reported a failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// isUniqueViolation detects uniqueness conflicts from both supported
// drivers without importing driver-specific error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}
