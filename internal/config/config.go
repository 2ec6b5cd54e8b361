// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-records-sync binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix  prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database used by the
	// server (PostgreSQL) or by the client cache (SQLite).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the client transport that talks to the
	// remote store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds tuning of the synchronization engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Logs holds log output settings of interactive binaries.
	Logs Logs `envPrefix:"LOGS_"`

	// IssueToken names a tenant to print a bearer token for. The server
	// exits right after printing it. Set only by the -issue-token flag.
	IssueToken string

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string. A "postgres://" URL selects PostgreSQL,
	// anything else is treated as a SQLite path; ":memory:" selects the
	// in-memory client store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client side of the remote API.
type Adapter struct {
	// HTTPAddress is the base URL of the remote store (e.g.
	// "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token presented to the remote store. Its subject
	// names the tenant.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// HealthInterval is the period of the server's database health probe.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Sync tunes the chunked loader and the orchestrator.
type Sync struct {
	// ChunkSize is the page size requested from the remote store. It is
	// clamped to [1, 500] at use.
	ChunkSize int `env:"CHUNK_SIZE"`

	// MaxRetries bounds the retries of one failed page.
	MaxRetries int `env:"MAX_RETRIES"`

	// RetryBaseDelay is the first backoff delay; it doubles per retry up to
	// RetryMaxDelay.
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
	RetryMaxDelay  time.Duration `env:"RETRY_MAX_DELAY"`

	// ChunkPause is slept between pages to leave room for the host.
	ChunkPause time.Duration `env:"CHUNK_PAUSE"`

	// Collections lists every collection the tenant synchronizes.
	Collections []string `env:"COLLECTIONS" envSeparator:","`

	// CriticalCollections is the allow-list fetched in one request before
	// the background phase.
	CriticalCollections []string `env:"CRITICAL_COLLECTIONS" envSeparator:","`

	// ProgressBuffer is the capacity of each progress subscriber channel.
	ProgressBuffer int `env:"PROGRESS_BUFFER"`
}

// Logs holds log output settings.
type Logs struct {
	// Path is the rotating log file of the client. Empty means "logs" next
	// to the executable.
	// Env: LOGS_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

// GetServerConfig is [GetStructuredConfig] plus the checks the reference
// server needs before it can start.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
