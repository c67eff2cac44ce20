package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-session-sign-key   HMAC key of the local session token
//	-session-issuer     session token issuer
//	-password-hash-cost bcrypt cost
//	-request-timeout    remote call timeout (e.g., "15s")
//	-remote-driver      postgres | couchdb | memory
//	-d                  postgres DSN
//	-remote-url         couchdb base URL
//	-local-db           SQLite file of the session slot
//	-c/-config          json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("lyra-client", flag.ContinueOnError)

	var (
		sessionSignKey   string
		sessionIssuer    string
		passwordHashCost int
		requestTimeout   time.Duration
		remoteDriver     string
		remoteDSN        string
		remoteURL        string
		localDSN         string
		jsonConfigPath   string
	)

	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	fs.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost of new password hashes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	fs.StringVar(&remoteDriver, "remote-driver", "", "Remote store driver: postgres, couchdb or memory")
	fs.StringVar(&remoteDSN, "d", "", "Postgres DSN")
	fs.StringVar(&remoteURL, "remote-url", "", "CouchDB base URL")
	fs.StringVar(&localDSN, "local-db", "", "SQLite file of the session slot")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionSignKey:   sessionSignKey,
			SessionIssuer:    sessionIssuer,
			PasswordHashCost: passwordHashCost,
			RequestTimeout:   requestTimeout,
		},
		Storage: Storage{
			Remote: Remote{
				Driver: remoteDriver,
				DSN:    remoteDSN,
				URL:    remoteURL,
			},
			Local: Local{DSN: localDSN},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
