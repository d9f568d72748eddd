package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	LockTimeout     time.Duration
	ShutdownTimeout time.Duration
	HealthInterval  time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultLockTimeout     = 0 // wait for the user lock without bound
	defaultShutdownTimeout = 10 * time.Second
	defaultHealthInterval  = 30 * time.Second
)

// Load parses configuration from flags and environment variables.
// An empty DatabaseURI selects the in-memory storage backend.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		LockTimeout:     getDuration(lookup, "LOCK_TIMEOUT", defaultLockTimeout),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		HealthInterval:  getDuration(lookup, "HEALTH_INTERVAL", defaultHealthInterval),
	}

	fs := flag.NewFlagSet("pointledger", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		lockTimeoutStr     = cfg.LockTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		healthIntervalStr  = cfg.HealthInterval.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN (empty for in-memory storage)")
	fs.StringVar(&lockTimeoutStr, "lock-timeout", lockTimeoutStr, "Per-user lock acquisition timeout (0 disables)")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&healthIntervalStr, "health-interval", healthIntervalStr, "Interval between storage health checks")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.LockTimeout, err = time.ParseDuration(lockTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid lock timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.HealthInterval, err = time.ParseDuration(healthIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid health interval: %w", err)
	}

	if cfg.LockTimeout < 0 {
		cfg.LockTimeout = defaultLockTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.HealthInterval <= 0 {
		cfg.HealthInterval = defaultHealthInterval
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
