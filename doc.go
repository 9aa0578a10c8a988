// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the alx-polly API server.

alx-polly is a polling service: users register, create polls with
fixed options, share them, and collect votes, with per-user dashboards
showing aggregate statistics. Anonymous visitors can vote too, keyed
by a deterministic client fingerprint.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..."

A .env file in the working directory is loaded on startup.

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - SESSION_SECRET (--session-secret): Secret for session token HMAC
  - VOTER_HASH_SALT (--voter-salt): Salt for anonymous voter fingerprints

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_DRIVER (-t): postgres (default) or sqlite

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, polls, votes, stats)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - store: Poll store, vote ledger, user store, stats aggregation
  - auth: Sessions, credentials, voter identity
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
