package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
)

// Module exposes configuration loader for fx graphs.
var Module = fx.Provide(Load)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	JWTSecret          string
	SessionSecret      string
	TokenTTL           time.Duration
	PasswordCost       int
	LogLevel           string
	DraftTTL           time.Duration
	DraftSweepInterval time.Duration
	MaxDraftItems      int
	ShutdownTimeout    time.Duration
}

const (
	defaultRunAddress         = ":8080"
	defaultJWTSecret          = "change-me-in-production"
	defaultSessionSecret      = "change-me-session-secret"
	defaultLogLevel           = "info"
	defaultTokenTTL           = 12 * time.Hour
	defaultDraftTTL           = 30 * time.Minute
	defaultDraftSweepInterval = time.Minute
	defaultMaxDraftItems      = 500
	defaultShutdownTimeout    = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:    getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:   getString(lookup, "DATABASE_URI", ""),
		JWTSecret:     getString(lookup, "JWT_SECRET", defaultJWTSecret),
		SessionSecret: getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		LogLevel:      getString(lookup, "LOG_LEVEL", defaultLogLevel),
		MaxDraftItems: getInt(lookup, "MAX_DRAFT_ITEMS", defaultMaxDraftItems),
		PasswordCost:  getInt(lookup, "BCRYPT_COST", 0),
	}

	fs := flag.NewFlagSet("inventory", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = getString(lookup, "TOKEN_TTL", defaultTokenTTL.String())
		draftTTLStr        = getString(lookup, "DRAFT_TTL", defaultDraftTTL.String())
		sweepIntervalStr   = getString(lookup, "DRAFT_SWEEP_INTERVAL", defaultDraftSweepInterval.String())
		shutdownTimeoutStr = getString(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session cookies")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued auth tokens")
	fs.IntVar(&cfg.PasswordCost, "bcrypt-cost", cfg.PasswordCost, "bcrypt cost for operator passwords, 0 for default")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&draftTTLStr, "draft-ttl", draftTTLStr, "Idle time after which a draft expires")
	fs.StringVar(&sweepIntervalStr, "draft-sweep", sweepIntervalStr, "Interval between expired draft sweeps")
	fs.IntVar(&cfg.MaxDraftItems, "max-draft-items", cfg.MaxDraftItems, "Maximum items staged in one draft")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.DraftTTL, err = time.ParseDuration(draftTTLStr); err != nil {
		return nil, fmt.Errorf("invalid draft ttl: %w", err)
	}

	if cfg.DraftSweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid draft sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.DraftTTL <= 0 {
		cfg.DraftTTL = defaultDraftTTL
	}

	if cfg.DraftSweepInterval <= 0 {
		cfg.DraftSweepInterval = defaultDraftSweepInterval
	}

	if cfg.MaxDraftItems <= 0 {
		cfg.MaxDraftItems = defaultMaxDraftItems
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
