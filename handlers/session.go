// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/baydre/alx-polly/auth"
	"github.com/baydre/alx-polly/cliparse"
)

// currentUserID resolves the authenticated caller from the request, or
// "" when no valid session token is present. Tokens are accepted from
// the X-Session-Token header or an Authorization: Bearer header.
func currentUserID(r *http.Request, cfg cliparse.Config) string {
	token := r.Header.Get("X-Session-Token")
	if token == "" {
		if bearer := r.Header.Get("Authorization"); strings.HasPrefix(bearer, "Bearer ") {
			token = strings.TrimPrefix(bearer, "Bearer ")
		}
	}
	if token == "" {
		return ""
	}

	userID, err := auth.ParseSessionToken(token, cfg.SessionSecret)
	if err != nil {
		return ""
	}
	return userID
}
