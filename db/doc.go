// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - app_user: Registered accounts
  - poll: Poll metadata, lifecycle state, and the denormalized total_votes counter
  - poll_option: Fixed options per poll with per-option vote counters
  - vote: Append-only vote log, one row per (poll, voter identity)

# Relationships

	app_user 1──* poll
	poll 1──* poll_option
	poll 1──* vote

All foreign keys use ON DELETE CASCADE. Deletion is additionally
performed explicitly inside a transaction by the store layer, so the
cascade behavior does not depend on the SQLite foreign-key pragma.

# Constraints

	app_user.email UNIQUE
	vote (poll_id, voter_identity) UNIQUE
	poll.total_votes >= 0, poll_option.votes >= 0

The compound UNIQUE on vote is what makes one-vote-per-identity hold
under concurrent requests: the second writer fails at the constraint
and the store translates that to a duplicate-vote rejection.

# Portability

The DDL is accepted by both PostgreSQL (production, via lib/pq) and
SQLite (development and tests, via modernc.org/sqlite). Timestamps are
always written explicitly by the store, so column defaults are a
fallback only.
*/
package db
