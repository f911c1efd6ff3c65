// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - JoinTimeout: How long a pending join request waits for an admin
    decision before expiring (default: 120s)
  - InactivityTimeout: How long an accepted participant has to open a
    live connection before being purged (default: 45s)
  - CodeMaxAttempts: Retry budget when searching for an unused room
    code (default: 100)

# CLI Flags

	-p                  Server port
	-join-timeout       Join request timeout, in seconds
	-inactivity-timeout Connection grace period, in seconds
	-code-attempts      Room code retry budget

# Environment Variables

Flags fall back to environment variables:

	PORT                       → -p
	JOIN_TIMEOUT_SECONDS       → -join-timeout
	INACTIVITY_TIMEOUT_SECONDS → -inactivity-timeout
	CODE_MAX_ATTEMPTS          → -code-attempts

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if a value is malformed or out of range:

  - timeouts must be at least 1 second
  - the code retry budget must be at least 1

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	manager := room.NewManager(cfg)
	mux := router.NewRouter(manager, cfg)
*/
package cliparse
