// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the alx-polly API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - AuthHandler: Registration, login, and current-user lookup
  - PollHandler: Poll lifecycle (create, get, list, update, delete)
  - VoteHandler: Vote recording
  - StatsHandler: Per-owner dashboard aggregates

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Authentication

Authenticated routes read a session token from the X-Session-Token
header (or Authorization: Bearer). The token resolves to a user ID
once per request; business logic never consults any implicit session
state.

	POST /auth/register → Register (returns token)
	POST /auth/login    → Login (returns token)
	GET  /auth/me       → Me

# Poll Lifecycle

Polls are created active with at least two options and report both
per-option and total vote counters:

	POST   /polls      → CreatePoll (authenticated)
	GET    /polls      → ListPolls (public)
	GET    /my/polls   → ListMyPolls (authenticated, owner filter)
	GET    /polls/{id} → GetPoll (public, includes caller's vote if any)
	PUT    /polls/{id} → UpdatePoll (owner only)
	DELETE /polls/{id} → DeletePoll (owner only)

Mutations check existence before ownership, so a non-owner gets 404
for an unknown poll and 403 for someone else's poll.

# Voting

	POST /polls/{id}/votes → CastVote

Votes are open to anonymous callers. The voter identity is the
account ID when authenticated, otherwise a deterministic fingerprint
of client IP, user agent, and poll ID. Rejections carry stable codes:
duplicate_vote, poll_closed, invalid_option (all 400), not_found (404).

# Stats

	GET /stats → GetStats (authenticated)

Returns total_polls, total_votes, active_polls, and average_votes
(rounded half-up) for the caller's polls.
*/
package handlers
