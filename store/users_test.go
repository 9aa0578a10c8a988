// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"testing"

	"github.com/baydre/alx-polly/store"
	"github.com/baydre/alx-polly/testutil"
)

func TestUserCreateAndFind(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	users := store.NewUserStore(conn)

	created, err := users.Create("Alice", "alice@example.com", "hashed-credential")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Errorf("Expected populated ID and timestamp: %+v", created)
	}

	byEmail, err := users.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if byEmail.ID != created.ID || byEmail.CredHash != "hashed-credential" {
		t.Errorf("FindByEmail mismatch: %+v", byEmail)
	}

	byID, err := users.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Errorf("FindByID mismatch: %+v", byID)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	users := store.NewUserStore(conn)

	if _, err := users.Create("Alice", "alice@example.com", "h1"); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err := users.Create("Alice Again", "alice@example.com", "h2")
	if !errors.Is(err, store.ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestUserNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	users := store.NewUserStore(conn)

	if _, err := users.FindByEmail("missing@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound by email, got %v", err)
	}
	if _, err := users.FindByID("missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound by ID, got %v", err)
	}
}
