// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the alx-polly API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Accounts (public):

	POST /auth/register - Create account, returns session token
	POST /auth/login    - Verify credentials, returns session token
	GET  /auth/me       - Current account (requires X-Session-Token)

Polls:

	POST   /polls      - Create poll (authenticated)
	GET    /polls      - List all polls
	GET    /my/polls   - List caller's polls (authenticated)
	GET    /polls/{id} - Poll detail with options and caller's vote
	PUT    /polls/{id} - Partial update (owner only)
	DELETE /polls/{id} - Delete with options and votes (owner only)

Voting (anonymous allowed):

	POST /polls/{id}/votes - Cast one vote per voter identity

Stats:

	GET /stats - Caller's dashboard aggregates (authenticated)

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(db, cfg)
	pollHandler := handlers.NewPollHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
