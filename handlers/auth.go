// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/baydre/alx-polly/auth"
	"github.com/baydre/alx-polly/cliparse"
	"github.com/baydre/alx-polly/middleware"
	"github.com/baydre/alx-polly/models"
	"github.com/baydre/alx-polly/store"
)

type AuthHandler struct {
	users *store.UserStore
	cfg   cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{users: store.NewUserStore(db), cfg: cfg}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Name == "" || req.Email == "" || req.Password == "" {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, models.CodeValidation, "name, email, and password are required")
		return
	}
	if len(req.Password) < 6 {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, models.CodeValidation, "password must be at least 6 characters")
		return
	}

	credHash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	user, err := h.users.Create(req.Name, req.Email, credHash)
	if errors.Is(err, store.ErrEmailTaken) {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, models.CodeValidation, "User with this email already exists")
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Registration failed")
		return
	}

	slog.Info("user registered", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResponse{
		Token: auth.GenerateSessionToken(user.ID, h.cfg.SessionSecret),
		User:  user,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, models.CodeValidation, "email and password are required")
		return
	}

	user, err := h.users.FindByEmail(req.Email)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to look up user", "error", err)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Login failed")
		return
	}

	if !auth.CheckPassword(user.CredHash, req.Password) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		Token: auth.GenerateSessionToken(user.ID, h.cfg.SessionSecret),
		User:  user,
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	callerID := currentUserID(r, h.cfg)
	if callerID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.users.FindByID(callerID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if err != nil {
		slog.Error("failed to look up user", "error", err)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}
