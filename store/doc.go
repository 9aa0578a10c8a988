// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns all reads and writes against the relational store.

# Components

  - UserStore: account records (create, lookup by email or ID)
  - PollStore: poll and option lifecycle (create, get, list, partial
    update, cascading delete)
  - VoteLedger: the append-only vote log and the denormalized counters
  - Stats: per-owner dashboard aggregates

Each component is constructed with a *sql.DB:

	polls := store.NewPollStore(db)
	ledger := store.NewVoteLedger(db)

# Vote Recording

CastVote is the only path that touches vote counters:

	vote, err := ledger.CastVote(pollID, optionID, voterIdentity)

It runs as one transaction: duplicate check, poll existence and
activity check, option membership check, then the vote insert plus
both counter increments. Concurrent duplicates are settled by the
(poll_id, voter_identity) UNIQUE constraint, so exactly one of two
racing requests succeeds. The invariant

	poll.total_votes == SUM(option.votes) == COUNT(vote rows)

holds after every commit; no partially-applied state is observable.

# Errors

Business-rule rejections come back as sentinel errors (ErrNotFound,
ErrDuplicateVote, ErrPollClosed, ErrInvalidOption, ErrValidation,
ErrEmailTaken) for callers to test with errors.Is. Unexpected driver
failures are wrapped with context and should surface as generic
storage failures. A transient conflict (Postgres serialization
failure, SQLite busy) is retried once with the full check sequence
re-executed.
*/
package store
