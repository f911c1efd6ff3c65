package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port              int
	JoinTimeout       time.Duration
	InactivityTimeout time.Duration
	CodeMaxAttempts   int
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var joinSeconds, inactivitySeconds int

	fs := flag.NewFlagSet("voteroom", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Room behaviour
	fs.IntVar(&joinSeconds, "join-timeout", 0, "Seconds before a pending join request expires")
	fs.IntVar(&inactivitySeconds, "inactivity-timeout", 0, "Seconds an accepted participant has to connect")
	fs.IntVar(&cfg.CodeMaxAttempts, "code-attempts", 0, "Room code generation retry budget")

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
			cfg.Port = 3318 // default
		}
	}

	if joinSeconds == 0 {
		var err error
		joinSeconds, err = envInt("JOIN_TIMEOUT_SECONDS", 120)
		if err != nil {
			return Config{}, err
		}
	}
	if joinSeconds < 1 {
		return Config{}, errors.New("join timeout must be at least 1 second")
	}
	cfg.JoinTimeout = time.Duration(joinSeconds) * time.Second

	if inactivitySeconds == 0 {
		var err error
		inactivitySeconds, err = envInt("INACTIVITY_TIMEOUT_SECONDS", 45)
		if err != nil {
			return Config{}, err
		}
	}
	if inactivitySeconds < 1 {
		return Config{}, errors.New("inactivity timeout must be at least 1 second")
	}
	cfg.InactivityTimeout = time.Duration(inactivitySeconds) * time.Second

	if cfg.CodeMaxAttempts == 0 {
		var err error
		cfg.CodeMaxAttempts, err = envInt("CODE_MAX_ATTEMPTS", 100)
		if err != nil {
			return Config{}, err
		}
	}
	if cfg.CodeMaxAttempts < 1 {
		return Config{}, errors.New("code generation budget must be at least 1")
	}

	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + key + " env variable")
	}
	return value, nil
}
