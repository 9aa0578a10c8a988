// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidToken = errors.New("invalid session token")

// bcryptCost matches the cost the web frontend used for existing
// credential hashes, so both verify against the same rows.
const bcryptCost = 12

// NewID returns a fresh UUID string for database records.
func NewID() string {
	return uuid.NewString()
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateSessionToken creates an HMAC-signed token carrying the user ID.
// The token is deterministic for a given (userID, secret) pair, so it can
// be validated without storing sessions in the database.
func GenerateSessionToken(userID, secret string) string {
	return userID + "." + signUserID(userID, secret)
}

// ParseSessionToken validates a session token and returns the user ID it
// carries. Returns ErrInvalidToken for malformed or tampered tokens.
func ParseSessionToken(token, secret string) (string, error) {
	userID, sig, ok := strings.Cut(token, ".")
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(sig), []byte(signUserID(userID, secret))) {
		return "", ErrInvalidToken
	}
	return userID, nil
}

func signUserID(userID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(userID))
	// URL-safe base64 without padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

// AnonymousVoterID derives a stable identity for an unauthenticated voter
// from the client IP, user agent, and poll ID. The same triple always
// yields the same identity so repeat votes are caught; including the poll
// ID scopes the identity so one visitor can vote on independent polls.
//
// This is a best-effort, non-cryptographic identity: shared networks
// collide and headers are spoofable. It is not a security boundary.
func AnonymousVoterID(ip, userAgent, pollID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	h.Write([]byte{'\n'})
	h.Write([]byte(userAgent))
	h.Write([]byte{'\n'})
	h.Write([]byte(pollID))
	sum := h.Sum(nil)
	return "anon-" + hex.EncodeToString(sum[:16])
}

// ResolveVoter produces the voter identity for a request: the account ID
// when the caller is authenticated, otherwise the anonymous fingerprint.
// It never fails - an anonymous fallback always exists.
func ResolveVoter(userID, ip, userAgent, pollID, salt string) string {
	if userID != "" {
		return userID
	}
	return AnonymousVoterID(ip, userAgent, pollID, salt)
}

// CanMutatePoll reports whether callerID may edit, delete, or change the
// status of a poll created by ownerID. Only the creator qualifies.
func CanMutatePoll(callerID, ownerID string) bool {
	return callerID != "" && callerID == ownerID
}
