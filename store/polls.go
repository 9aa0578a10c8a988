// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/baydre/alx-polly/auth"
	"github.com/baydre/alx-polly/models"
)

type PollStore struct {
	db *sql.DB
}

func NewPollStore(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

// PollUpdate is a partial update; nil fields are left unchanged.
// Counters and options are deliberately absent - they are mutated only
// by the vote ledger.
type PollUpdate struct {
	Title       *string
	Description *string
	Status      *string
	EndDate     *time.Time
}

// Create inserts a poll and its options in one transaction. The poll
// starts active with zeroed counters. Blank option entries are dropped;
// fewer than two surviving options is a validation failure.
func (s *PollStore) Create(ownerID, title, description string, options []string, endDate *time.Time) (models.Poll, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Poll{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	texts := make([]string, 0, len(options))
	for _, opt := range options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			texts = append(texts, trimmed)
		}
	}
	if len(texts) < 2 {
		return models.Poll{}, fmt.Errorf("%w: at least 2 non-empty options are required", ErrValidation)
	}

	now := time.Now().UTC()
	poll := models.Poll{
		ID:          auth.NewID(),
		Title:       title,
		Description: description,
		Status:      models.StatusActive,
		TotalVotes:  0,
		CreatedBy:   ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
		EndDate:     endDate,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, title, description, status, total_votes, created_by, created_at, updated_at, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, poll.ID, poll.Title, poll.Description, poll.Status, poll.TotalVotes,
		poll.CreatedBy, poll.CreatedAt, poll.UpdatedAt, poll.EndDate)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to insert poll: %w", err)
	}

	for i, text := range texts {
		opt := models.PollOption{
			ID:     auth.NewID(),
			PollID: poll.ID,
			Text:   text,
			Votes:  0,
		}
		_, err = tx.Exec(`
			INSERT INTO poll_option (id, poll_id, text, votes, position)
			VALUES ($1, $2, $3, $4, $5)
		`, opt.ID, opt.PollID, opt.Text, opt.Votes, i)
		if err != nil {
			return models.Poll{}, fmt.Errorf("failed to insert option: %w", err)
		}
		poll.Options = append(poll.Options, opt)
	}

	if err := tx.Commit(); err != nil {
		return models.Poll{}, fmt.Errorf("failed to commit poll creation: %w", err)
	}

	return poll, nil
}

// GetByID returns the poll with its options, or ErrNotFound.
func (s *PollStore) GetByID(id string) (models.Poll, error) {
	var poll models.Poll
	err := s.db.QueryRow(`
		SELECT id, title, description, status, total_votes, created_by, created_at, updated_at, end_date
		FROM poll
		WHERE id = $1
	`, id).Scan(
		&poll.ID, &poll.Title, &poll.Description, &poll.Status, &poll.TotalVotes,
		&poll.CreatedBy, &poll.CreatedAt, &poll.UpdatedAt, &poll.EndDate,
	)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}

	poll.Options, err = s.optionsFor(poll.ID)
	if err != nil {
		return models.Poll{}, err
	}
	return poll, nil
}

// List returns polls newest-created first. A non-empty ownerID filters
// to that owner's polls.
func (s *PollStore) List(ownerID string) ([]models.Poll, error) {
	query := `
		SELECT id, title, description, status, total_votes, created_by, created_at, updated_at, end_date
		FROM poll
	`
	var args []interface{}
	if ownerID != "" {
		query += " WHERE created_by = $1"
		args = append(args, ownerID)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var poll models.Poll
		if err := rows.Scan(
			&poll.ID, &poll.Title, &poll.Description, &poll.Status, &poll.TotalVotes,
			&poll.CreatedBy, &poll.CreatedAt, &poll.UpdatedAt, &poll.EndDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		poll.Options = []models.PollOption{}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polls: %w", err)
	}

	for i := range polls {
		polls[i].Options, err = s.optionsFor(polls[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return polls, nil
}

// Update applies a partial update and returns the updated poll.
// Returns ErrNotFound for an unknown ID and ErrValidation for an
// unknown status value. Option text and counters cannot be changed here.
func (s *PollStore) Update(id string, upd PollUpdate) (models.Poll, error) {
	if upd.Status != nil {
		switch *upd.Status {
		case models.StatusActive, models.StatusClosed, models.StatusDraft:
		default:
			return models.Poll{}, fmt.Errorf("%w: unknown status %q", ErrValidation, *upd.Status)
		}
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return models.Poll{}, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	sets := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if upd.Title != nil {
		sets = append(sets, "title = "+arg(strings.TrimSpace(*upd.Title)))
	}
	if upd.Description != nil {
		sets = append(sets, "description = "+arg(*upd.Description))
	}
	if upd.Status != nil {
		sets = append(sets, "status = "+arg(*upd.Status))
	}
	if upd.EndDate != nil {
		sets = append(sets, "end_date = "+arg(*upd.EndDate))
	}
	sets = append(sets, "updated_at = "+arg(time.Now().UTC()))

	query := "UPDATE poll SET " + strings.Join(sets, ", ") + " WHERE id = " + arg(id)
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to update poll: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return models.Poll{}, ErrNotFound
	}

	return s.GetByID(id)
}

// Delete removes the poll, its options, and its votes in one
// transaction. Returns ErrNotFound for an unknown ID.
func (s *PollStore) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM vote WHERE poll_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM poll_option WHERE poll_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete options: %w", err)
	}

	res, err := tx.Exec("DELETE FROM poll WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (s *PollStore) optionsFor(pollID string) ([]models.PollOption, error) {
	rows, err := s.db.Query(`
		SELECT id, poll_id, text, votes
		FROM poll_option
		WHERE poll_id = $1
		ORDER BY position, id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.PollOption{}
	for rows.Next() {
		var opt models.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate options: %w", err)
	}
	return options, nil
}
