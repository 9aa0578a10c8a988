// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrNotFound means the referenced poll, option, or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the caller supplied malformed or incomplete input.
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken means a user with the given email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrDuplicateVote means this voter identity already voted on the poll.
	ErrDuplicateVote = errors.New("already voted on this poll")

	// ErrPollClosed means the poll is not accepting votes.
	ErrPollClosed = errors.New("poll is not active")

	// ErrInvalidOption means the option does not belong to the poll.
	ErrInvalidOption = errors.New("option does not belong to poll")
)

// isUniqueViolation reports whether err is a unique-constraint failure
// from either supported driver (pq error class 23505, or the SQLite
// message from modernc.org/sqlite).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isRetryable reports whether err is a transient conflict worth one
// retry: a serialization or deadlock failure on Postgres, or a busy
// database on SQLite.
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
