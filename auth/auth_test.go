// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := "user-123"

	token := GenerateSessionToken(userID, secret)
	if token == "" {
		t.Fatal("Expected non-empty token")
	}

	parsed, err := ParseSessionToken(token, secret)
	if err != nil {
		t.Fatalf("ParseSessionToken failed: %v", err)
	}
	if parsed != userID {
		t.Errorf("Expected user ID %q, got %q", userID, parsed)
	}

	// Determinism: same inputs, same token
	if GenerateSessionToken(userID, secret) != token {
		t.Error("Expected deterministic token generation")
	}
}

func TestParseSessionTokenRejectsTampering(t *testing.T) {
	secret := "test-secret"
	token := GenerateSessionToken("user-123", secret)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", "user-123"},
		{"empty user", "." + strings.SplitN(token, ".", 2)[1]},
		{"swapped user", "user-456." + strings.SplitN(token, ".", 2)[1]},
		{"truncated signature", token[:len(token)-4]},
		{"wrong secret", GenerateSessionToken("user-123", "other-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSessionToken(tt.token, secret); err != ErrInvalidToken {
				t.Errorf("Expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "password123" {
		t.Fatal("Hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "password123") {
		t.Error("Expected correct password to verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("Expected wrong password to fail")
	}
}

func TestAnonymousVoterIDDeterminism(t *testing.T) {
	salt := "test-salt"

	a := AnonymousVoterID("203.0.113.7", "Mozilla/5.0", "poll-1", salt)
	b := AnonymousVoterID("203.0.113.7", "Mozilla/5.0", "poll-1", salt)
	if a != b {
		t.Errorf("Same inputs must yield the same identity: %q vs %q", a, b)
	}

	if !strings.HasPrefix(a, "anon-") {
		t.Errorf("Expected anon- prefix, got %q", a)
	}
	if len(a) != len("anon-")+32 {
		t.Errorf("Expected fixed-length identity, got %d chars", len(a))
	}
}

func TestAnonymousVoterIDScoping(t *testing.T) {
	salt := "test-salt"
	base := AnonymousVoterID("203.0.113.7", "Mozilla/5.0", "poll-1", salt)

	tests := []struct {
		name              string
		ip, agent, pollID string
	}{
		{"different poll", "203.0.113.7", "Mozilla/5.0", "poll-2"},
		{"different ip", "198.51.100.9", "Mozilla/5.0", "poll-1"},
		{"different agent", "203.0.113.7", "curl/8.0", "poll-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnonymousVoterID(tt.ip, tt.agent, tt.pollID, salt)
			if got == base {
				t.Errorf("Expected a different identity for %s", tt.name)
			}
		})
	}

	// Different salt also changes the identity
	if AnonymousVoterID("203.0.113.7", "Mozilla/5.0", "poll-1", "other-salt") == base {
		t.Error("Expected salt to affect the identity")
	}
}

func TestResolveVoter(t *testing.T) {
	salt := "test-salt"

	// Authenticated: the account ID wins
	if got := ResolveVoter("user-1", "203.0.113.7", "Mozilla/5.0", "poll-1", salt); got != "user-1" {
		t.Errorf("Expected account ID, got %q", got)
	}

	// Anonymous: falls back to the fingerprint, never fails
	got := ResolveVoter("", "203.0.113.7", "Mozilla/5.0", "poll-1", salt)
	want := AnonymousVoterID("203.0.113.7", "Mozilla/5.0", "poll-1", salt)
	if got != want {
		t.Errorf("Expected fingerprint %q, got %q", want, got)
	}
}

func TestCanMutatePoll(t *testing.T) {
	tests := []struct {
		name     string
		callerID string
		ownerID  string
		want     bool
	}{
		{"owner", "user-1", "user-1", true},
		{"non-owner", "user-2", "user-1", false},
		{"unauthenticated", "", "user-1", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutatePoll(tt.callerID, tt.ownerID); got != tt.want {
				t.Errorf("CanMutatePoll(%q, %q) = %v, want %v", tt.callerID, tt.ownerID, got, tt.want)
			}
		})
	}
}

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	if a == "" || a == b {
		t.Errorf("Expected unique non-empty IDs, got %q and %q", a, b)
	}
}
