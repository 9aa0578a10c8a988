// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/baydre/alx-polly/auth"
	"github.com/baydre/alx-polly/models"
)

// VoteLedger owns the append-only vote log. Votes are never updated or
// deleted except when their poll is deleted.
type VoteLedger struct {
	db *sql.DB
}

func NewVoteLedger(db *sql.DB) *VoteLedger {
	return &VoteLedger{db: db}
}

// CastVote records one vote for voterIdentity on pollID, choosing
// optionID. The whole check-then-write sequence runs in one
// transaction: the vote row insert and both counter increments commit
// together or not at all. A concurrent duplicate loses at the
// (poll_id, voter_identity) UNIQUE constraint and is reported as
// ErrDuplicateVote. Transient conflicts are retried once from the top.
func (l *VoteLedger) CastVote(pollID, optionID, voterIdentity string) (models.Vote, error) {
	vote, err := l.castVoteOnce(pollID, optionID, voterIdentity)
	if err != nil && isRetryable(err) {
		vote, err = l.castVoteOnce(pollID, optionID, voterIdentity)
	}
	return vote, err
}

func (l *VoteLedger) castVoteOnce(pollID, optionID, voterIdentity string) (models.Vote, error) {
	tx, err := l.db.Begin()
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM vote WHERE poll_id = $1 AND voter_identity = $2)
	`, pollID, voterIdentity).Scan(&exists)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to check for existing vote: %w", err)
	}
	if exists {
		return models.Vote{}, ErrDuplicateVote
	}

	var status string
	err = tx.QueryRow("SELECT status FROM poll WHERE id = $1", pollID).Scan(&status)
	if err == sql.ErrNoRows {
		return models.Vote{}, ErrNotFound
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query poll: %w", err)
	}
	if status != models.StatusActive {
		return models.Vote{}, ErrPollClosed
	}

	var optionOK bool
	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM poll_option WHERE id = $1 AND poll_id = $2)
	`, optionID, pollID).Scan(&optionOK)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to check option: %w", err)
	}
	if !optionOK {
		return models.Vote{}, ErrInvalidOption
	}

	vote := models.Vote{
		ID:            auth.NewID(),
		PollID:        pollID,
		OptionID:      optionID,
		VoterIdentity: voterIdentity,
		VotedAt:       time.Now().UTC(),
	}

	_, err = tx.Exec(`
		INSERT INTO vote (id, poll_id, option_id, voter_identity, voted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.PollID, vote.OptionID, vote.VoterIdentity, vote.VotedAt)
	if err != nil {
		// A concurrent writer beat us past the pre-check; the
		// constraint is the authority.
		if isUniqueViolation(err) {
			return models.Vote{}, ErrDuplicateVote
		}
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	if _, err := tx.Exec("UPDATE poll_option SET votes = votes + 1 WHERE id = $1", optionID); err != nil {
		return models.Vote{}, fmt.Errorf("failed to increment option votes: %w", err)
	}
	if _, err := tx.Exec("UPDATE poll SET total_votes = total_votes + 1 WHERE id = $1", pollID); err != nil {
		return models.Vote{}, fmt.Errorf("failed to increment poll total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return models.Vote{}, ErrDuplicateVote
		}
		return models.Vote{}, fmt.Errorf("failed to commit vote: %w", err)
	}

	return vote, nil
}

// GetVote returns the vote cast by voterIdentity on pollID, or
// ErrNotFound if that identity has not voted.
func (l *VoteLedger) GetVote(pollID, voterIdentity string) (models.Vote, error) {
	var vote models.Vote
	err := l.db.QueryRow(`
		SELECT id, poll_id, option_id, voter_identity, voted_at
		FROM vote
		WHERE poll_id = $1 AND voter_identity = $2
	`, pollID, voterIdentity).Scan(
		&vote.ID, &vote.PollID, &vote.OptionID, &vote.VoterIdentity, &vote.VotedAt,
	)
	if err == sql.ErrNoRows {
		return models.Vote{}, ErrNotFound
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query vote: %w", err)
	}
	return vote, nil
}

// CountVotes returns the number of vote rows for a poll. Used by tests
// to check the counters against the log.
func (l *VoteLedger) CountVotes(pollID string) (int, error) {
	var n int
	err := l.db.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1", pollID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return n, nil
}
