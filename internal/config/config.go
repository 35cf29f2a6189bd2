// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Registry backends accepted in [Registry.Backend].
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Default values applied to every field left empty by all other sources.
const (
	DefaultVersion         = "dev"
	DefaultAccessHeader    = "X-Interstellar-Token"
	DefaultOriginLocation  = "Earth"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRegistryDSN     = "file::memory:?cache=shared"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "debug"
)

// StructuredConfig is the top-level configuration of the parcel tracker
// server. It is populated by merging defaults, an optional .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, access header and
	// package creation defaults.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the package registry backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// AccessHeader is the name of the request header whose presence admits
	// a request. Its value is never inspected.
	// Env: APP_ACCESS_HEADER
	AccessHeader string `env:"ACCESS_HEADER"`

	// OriginLocation is the current location assigned to every new package.
	// Env: APP_ORIGIN_LOCATION
	OriginLocation string `env:"ORIGIN_LOCATION"`

	// StrictIDs enables the check-and-retry package ID generation. When
	// false, generated IDs are inserted without a collision check.
	// Env: APP_STRICT_IDS
	StrictIDs bool `env:"STRICT_IDS"`

	// LogLevel is a zerolog level name (debug, info, warn, ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of the storage backends.
type Storage struct {
	Registry Registry `envPrefix:"REGISTRY_"`
}

// Registry configures the package registry.
type Registry struct {
	// Backend is either "memory" or "sqlite".
	// Env: STORAGE_REGISTRY_BACKEND
	Backend string `env:"BACKEND"`

	// DSN is the SQLite data source name used by the sqlite backend. Only
	// in-memory databases are accepted.
	// Env: STORAGE_REGISTRY_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// StatsInterval is how often the registry statistics are logged.
	// Zero disables the stats worker.
	// Env: WORKERS_STATS_INTERVAL
	StatsInterval time.Duration `env:"STATS_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
// Sources are applied in the following order, later non-zero values
// overriding earlier ones:
//  1. Defaults
//  2. Environment variables (after loading an optional .env file)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:        DefaultVersion,
			AccessHeader:   DefaultAccessHeader,
			OriginLocation: DefaultOriginLocation,
			LogLevel:       DefaultLogLevel,
		},
		Storage: Storage{
			Registry: Registry{
				Backend: BackendMemory,
				DSN:     DefaultRegistryDSN,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}
