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

type VoteHandler struct {
	polls  *store.PollStore
	ledger *store.VoteLedger
	cfg    cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{
		polls:  store.NewPollStore(db),
		ledger: store.NewVoteLedger(db),
		cfg:    cfg,
	}
}

// CastVote handles POST /polls/{id}/votes
// Open to both authenticated and anonymous callers; anonymous voters
// are identified by a deterministic fingerprint of IP, user agent, and
// poll ID, so a repeat attempt from the same client is a duplicate.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionID == "" {
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, models.CodeValidation, "option_id is required")
		return
	}

	identity := auth.ResolveVoter(
		currentUserID(r, h.cfg),
		middleware.GetClientIP(r),
		r.UserAgent(),
		pollID,
		h.cfg.VoterHashSalt,
	)

	vote, err := h.ledger.CastVote(pollID, req.OptionID, identity)
	switch {
	case errors.Is(err, store.ErrDuplicateVote):
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, models.CodeDuplicateVote, "You have already voted on this poll")
		return
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorCodeResponse(w, http.StatusNotFound, models.CodeNotFound, "Poll not found")
		return
	case errors.Is(err, store.ErrPollClosed):
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, models.CodePollClosed, "Poll is not accepting votes")
		return
	case errors.Is(err, store.ErrInvalidOption):
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, models.CodeInvalidOption, "Option does not belong to this poll")
		return
	case err != nil:
		slog.Error("failed to cast vote", "error", err, "poll_id", pollID)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Failed to record vote")
		return
	}

	poll, err := h.polls.GetByID(pollID)
	if err != nil {
		slog.Error("failed to reload poll after vote", "error", err, "poll_id", pollID)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "option_id", req.OptionID)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Vote: vote,
		Poll: poll,
	})
}
