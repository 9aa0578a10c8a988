// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/baydre/alx-polly/cliparse"
	"github.com/baydre/alx-polly/middleware"
	"github.com/baydre/alx-polly/models"
	"github.com/baydre/alx-polly/store"
)

type StatsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewStatsHandler(db *sql.DB, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{db: db, cfg: cfg}
}

// GetStats handles GET /stats
// Recomputed from the poll table on every call; never cached.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	callerID := currentUserID(r, h.cfg)
	if callerID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	stats, err := store.Stats(h.db, callerID)
	if err != nil {
		slog.Error("failed to compute stats", "error", err, "owner", callerID)
		middleware.ErrorCodeResponse(w, http.StatusInternalServerError, models.CodeStorage, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}
