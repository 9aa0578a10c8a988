package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseDriver string
	SessionSecret  string
	VoterHashSalt  string
}

// ParseFlags validates flags and fills the config from CLI args with
// environment-variable fallbacks.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("alx-polly", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseDriver, "t", "", "Database driver (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session token signing secret (prefer env)")
	fs.StringVar(&cfg.VoterHashSalt, "voter-salt", "", "Anonymous voter fingerprint salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseDriver == "" {
		cfg.DatabaseDriver = os.Getenv("DATABASE_DRIVER")
		if cfg.DatabaseDriver == "" {
			cfg.DatabaseDriver = "postgres"
		}
	}
	if cfg.DatabaseDriver != "postgres" && cfg.DatabaseDriver != "sqlite" {
		return Config{}, errors.New("database driver must be postgres or sqlite")
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.VoterHashSalt == "" {
		cfg.VoterHashSalt = os.Getenv("VOTER_HASH_SALT")
	}
	if cfg.VoterHashSalt == "" {
		return Config{}, errors.New("VOTER_HASH_SALT required")
	}

	return cfg, nil
}
