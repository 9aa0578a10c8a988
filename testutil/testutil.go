// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/baydre/alx-polly/auth"
	"github.com/baydre/alx-polly/cliparse"
	"github.com/baydre/alx-polly/db"
	"github.com/baydre/alx-polly/models"
	_ "modernc.org/sqlite"
)

var dbSeq atomic.Int64

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each call gets its own database; it lives as long as the
// connection pool holds a connection, which the single-connection
// limit guarantees for the test's lifetime.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name := fmt.Sprintf("alxpolly_test_%d", dbSeq.Add(1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One connection: keeps the shared in-memory database alive and
	// serializes writers, which is how SQLite behaves anyway.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3000,
		DatabaseURL:    ":memory:",
		DatabaseDriver: "sqlite",
		SessionSecret:  "test-session-secret",
		VoterHashSalt:  "test-voter-salt",
	}
}

// CreateTestUser inserts a user and returns it along with a valid
// session token. The password for the stored hash is "password123".
func CreateTestUser(t *testing.T, conn *sql.DB, cfg cliparse.Config, name, email string) (models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user := models.User{
		ID:        auth.NewID(),
		Name:      name,
		Email:     email,
		CredHash:  hash,
		CreatedAt: time.Now().UTC(),
	}
	_, err = conn.Exec(`
		INSERT INTO app_user (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Name, user.Email, user.CredHash, user.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user, auth.GenerateSessionToken(user.ID, cfg.SessionSecret)
}

// CreateTestPoll inserts a poll with the given options and returns the
// poll ID and option IDs. status should be "active", "closed", or "draft".
// Polls are created at distinct timestamps so list ordering is stable.
func CreateTestPoll(t *testing.T, conn *sql.DB, ownerID, title, status string, options ...string) (string, []string) {
	t.Helper()

	pollID := auth.NewID()
	createdAt := time.Now().UTC().Add(time.Duration(dbSeq.Add(1)) * time.Millisecond)
	_, err := conn.Exec(`
		INSERT INTO poll (id, title, description, status, total_votes, created_by, created_at, updated_at)
		VALUES ($1, $2, 'A test poll', $3, 0, $4, $5, $6)
	`, pollID, title, status, ownerID, createdAt, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	optionIDs := make([]string, 0, len(options))
	for i, text := range options {
		optionID := auth.NewID()
		_, err := conn.Exec(`
			INSERT INTO poll_option (id, poll_id, text, votes, position)
			VALUES ($1, $2, $3, 0, $4)
		`, optionID, pollID, text, i)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
		optionIDs = append(optionIDs, optionID)
	}

	return pollID, optionIDs
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertCounters checks the counter-consistency invariant for a poll:
// poll.total_votes equals the sum of option counters and the number of
// vote rows.
func AssertCounters(t *testing.T, conn *sql.DB, pollID string) {
	t.Helper()

	var total, optSum, voteRows int
	if err := conn.QueryRow("SELECT total_votes FROM poll WHERE id = $1", pollID).Scan(&total); err != nil {
		t.Fatalf("Failed to query poll total: %v", err)
	}
	if err := conn.QueryRow("SELECT COALESCE(SUM(votes), 0) FROM poll_option WHERE poll_id = $1", pollID).Scan(&optSum); err != nil {
		t.Fatalf("Failed to sum option votes: %v", err)
	}
	if err := conn.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1", pollID).Scan(&voteRows); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}

	if total != optSum || total != voteRows {
		t.Errorf("Counter mismatch for poll %s: total_votes=%d, sum(option.votes)=%d, count(votes)=%d",
			pollID, total, optSum, voteRows)
	}
}
