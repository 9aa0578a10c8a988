// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/baydre/alx-polly/auth"
	"github.com/baydre/alx-polly/cliparse"
	"github.com/baydre/alx-polly/middleware"
	"github.com/baydre/alx-polly/models"
	"github.com/baydre/alx-polly/store"
)

type PollHandler struct {
	polls  *store.PollStore
	ledger *store.VoteLedger
	cfg    cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{
		polls:  store.NewPollStore(db),
		ledger: store.NewVoteLedger(db),
		cfg:    cfg,
	}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	callerID := currentUserID(r, h.cfg)
	if callerID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.polls.Create(callerID, req.Title, req.Description, req.Options, req.EndDate)
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, models.CodeValidation, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "created_by", callerID)

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// GetPoll handles GET /polls/{id}
// Public; when the caller resolves to a voter identity that already
// voted, the response includes their vote.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.polls.GetByID(pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorCodeResponse(w, http.StatusNotFound, models.CodeNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Database error")
		return
	}

	identity := auth.ResolveVoter(
		currentUserID(r, h.cfg),
		middleware.GetClientIP(r),
		r.UserAgent(),
		pollID,
		h.cfg.VoterHashSalt,
	)

	resp := models.PollDetailResponse{Poll: poll}
	vote, err := h.ledger.GetVote(pollID, identity)
	if err == nil {
		resp.UserVote = &vote
	} else if !errors.Is(err, store.ErrNotFound) {
		slog.Warn("failed to look up caller vote", "error", err, "poll_id", pollID)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.List("")
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// ListMyPolls handles GET /my/polls
func (h *PollHandler) ListMyPolls(w http.ResponseWriter, r *http.Request) {
	callerID := currentUserID(r, h.cfg)
	if callerID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	polls, err := h.polls.List(callerID)
	if err != nil {
		slog.Error("failed to list polls", "error", err, "owner", callerID)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// UpdatePoll handles PUT /polls/{id}
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	callerID := currentUserID(r, h.cfg)
	if callerID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Existence is checked before ownership: non-owners learn a poll
	// exists (404 before 403).
	existing, err := h.polls.GetByID(pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorCodeResponse(w, http.StatusNotFound, models.CodeNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Database error")
		return
	}

	if !auth.CanMutatePoll(callerID, existing.CreatedBy) {
		middleware.ErrorCodeResponse(w, http.StatusForbidden, models.CodeForbidden, "You can only edit your own polls")
		return
	}

	poll, err := h.polls.Update(pollID, store.PollUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		EndDate:     req.EndDate,
	})
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, models.CodeValidation, err.Error())
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorCodeResponse(w, http.StatusNotFound, models.CodeNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to update poll", "error", err, "poll_id", pollID)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Failed to update poll")
		return
	}

	slog.Info("poll updated", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	callerID := currentUserID(r, h.cfg)
	if callerID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	existing, err := h.polls.GetByID(pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorCodeResponse(w, http.StatusNotFound, models.CodeNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Database error")
		return
	}

	if !auth.CanMutatePoll(callerID, existing.CreatedBy) {
		middleware.ErrorCodeResponse(w, http.StatusForbidden, models.CodeForbidden, "You can only delete your own polls")
		return
	}

	if err := h.polls.Delete(pollID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorCodeResponse(w, http.StatusNotFound, models.CodeNotFound, "Poll not found")
			return
		}
		slog.Error("failed to delete poll", "error", err, "poll_id", pollID)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Failed to delete poll")
		return
	}

	slog.Info("poll deleted", "poll_id", pollID, "deleted_by", callerID)

	middleware.JSONResponse(w, http.StatusOK, models.DeletePollResponse{Deleted: true})
}
