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

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Create registers a new user with an already-hashed credential.
// Returns ErrEmailTaken if the email is in use.
func (s *UserStore) Create(name, email, credHash string) (models.User, error) {
	user := models.User{
		ID:        auth.NewID(),
		Name:      name,
		Email:     email,
		CredHash:  credHash,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(`
		INSERT INTO app_user (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Name, user.Email, user.CredHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// FindByEmail returns the user with the given email, or ErrNotFound.
func (s *UserStore) FindByEmail(email string) (models.User, error) {
	return s.findUser("SELECT id, name, email, password_hash, created_at FROM app_user WHERE email = $1", email)
}

// FindByID returns the user with the given ID, or ErrNotFound.
func (s *UserStore) FindByID(id string) (models.User, error) {
	return s.findUser("SELECT id, name, email, password_hash, created_at FROM app_user WHERE id = $1", id)
}

func (s *UserStore) findUser(query, arg string) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.CredHash, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
