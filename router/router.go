// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/baydre/alx-polly/cliparse"
	"github.com/baydre/alx-polly/handlers"
	"github.com/baydre/alx-polly/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	pollHandler := handlers.NewPollHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts and sessions
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(authHandler.Me))

	// Poll lifecycle
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("PUT /polls/{id}", middleware.WithLogging(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(pollHandler.DeletePoll))
	mux.HandleFunc("GET /my/polls", middleware.WithLogging(pollHandler.ListMyPolls))

	// Voting (public, anonymous allowed)
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(voteHandler.CastVote))

	// Dashboard stats
	mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("alx-polly API v1"))
	})

	return mux
}
