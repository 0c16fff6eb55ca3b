// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"

	"github.com/MKhiriev/go-smite-api/models"
)

// StructuredConfig is the top-level configuration container for smitectl.
// It aggregates all sub-configurations and is populated by merging values
// from defaults, environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds developer credentials and the outbound transport settings.
	API API `envPrefix:"SMITE_"`

	// Cache holds the catalog response cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds configuration for the background session keeper.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds level and optional rotating file output.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds everything needed to build a smite.Client.
type API struct {
	// DevID is the developer id issued by Hi-Rez.
	// Env: SMITE_DEV_ID
	DevID string `env:"DEV_ID"`

	// AuthKey is the secret paired with DevID. It is only used to compute
	// request signatures and is never logged.
	// Env: SMITE_AUTH_KEY
	AuthKey string `env:"AUTH_KEY"`

	// Platform selects the endpoint: PC, Xbox or PS4.
	// Env: SMITE_PLATFORM
	Platform models.Platform `env:"PLATFORM"`

	// Format is the response format, json or xml.
	// Env: SMITE_FORMAT
	Format models.ResponseFormat `env:"FORMAT"`

	// BaseURL overrides the platform endpoint (proxies, stub servers).
	// Env: SMITE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds each outbound request (e.g. "30s").
	// Env: SMITE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of requests per second; 0 disables
	// limiting.
	// Env: SMITE_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the limiter bucket size.
	// Env: SMITE_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Cache configures the LRU that holds catalog endpoint bodies.
type Cache struct {
	// Size is the maximum number of cached bodies; 0 disables the cache.
	// Env: CACHE_SIZE
	Size int `env:"SIZE"`

	// TTL is how long a body stays valid.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// KeepAliveInterval is how often the session keeper checks the session.
	// Env: WORKERS_KEEP_ALIVE_INTERVAL
	KeepAliveInterval time.Duration `env:"KEEP_ALIVE_INTERVAL"`

	// SessionMaxAge is the age after which the keeper renews the session
	// without asking the server.
	// Env: WORKERS_SESSION_MAX_AGE
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE"`
}

// Log configures the application logger.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File, when set, sends logs to a rotating file instead of stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the smitectl
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:], parsed with fs)
//  3. JSON file (path resolved from sources 1 and 2)
//
// The positional arguments left after flag parsing are returned alongside
// the config.
func GetStructuredConfig(fs *flag.FlagSet, args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs, args).
		withJSON()

	cfg, err := b.build()
	return cfg, b.rest, err
}

// Defaults returns the values used when no source sets a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			Platform:       models.PlatformPC,
			Format:         models.FormatJSON,
			RequestTimeout: 30 * time.Second,
		},
		Cache: Cache{
			TTL: time.Hour,
		},
		Workers: Workers{
			KeepAliveInterval: time.Minute,
			SessionMaxAge:     14 * time.Minute,
		},
		Log: Log{
			Level: "info",
		},
	}
}
