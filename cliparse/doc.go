// Copyright (c) 2025 Baydre.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Database connection string (required)
  - DatabaseDriver: "postgres" or "sqlite" (default: postgres)
  - SessionSecret: Secret for session token HMAC (required)
  - VoterHashSalt: Salt for anonymous voter fingerprints (required)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database driver
	--session-secret Session token secret
	--voter-salt     Voter fingerprint salt

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_DRIVER → -t
	SESSION_SECRET  → --session-secret
	VOTER_HASH_SALT → --voter-salt

CLI flags take precedence over environment variables. main loads a
.env file (if present) via godotenv before parsing, so local dev can
keep everything in .env.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - SESSION_SECRET must be provided
  - VOTER_HASH_SALT must be provided
  - DATABASE_DRIVER, when set, must be postgres or sqlite
*/
package cliparse
