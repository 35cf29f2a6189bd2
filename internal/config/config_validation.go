// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] can be used at startup.
func (cfg *StructuredConfig) validate() error {
	if !isValidHeaderName(cfg.App.AccessHeader) {
		return fmt.Errorf("%w: access header %q", ErrInvalidAppConfigs, cfg.App.AccessHeader)
	}

	switch cfg.Storage.Registry.Backend {
	case BackendMemory:
	case BackendSQLite:
		if !isInMemoryDSN(cfg.Storage.Registry.DSN) {
			return fmt.Errorf("%w: sqlite registry must be in-memory, got %q", ErrInvalidStorageConfigs, cfg.Storage.Registry.DSN)
		}
	default:
		return fmt.Errorf("%w: unknown registry backend %q", ErrInvalidStorageConfigs, cfg.Storage.Registry.Backend)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Workers.StatsInterval < 0 {
		return fmt.Errorf("%w: negative stats interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if !isValidHeaderName(cfg.Adapter.AccessHeader) {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// isInMemoryDSN reports whether an SQLite DSN opens a memory-resident
// database, so that nothing outlives the process. Accepted are a ":memory:"
// filename (plain or as a file: URI) and a file: URI whose mode is memory.
func isInMemoryDSN(dsn string) bool {
	name, rawQuery, _ := strings.Cut(dsn, "?")
	if name == ":memory:" {
		return true
	}

	path, isURI := strings.CutPrefix(name, "file:")
	if !isURI {
		return false
	}
	if path == ":memory:" {
		return true
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return false
	}
	modes := query["mode"]
	if len(modes) == 0 {
		return false
	}
	for _, mode := range modes {
		if mode != "memory" {
			return false
		}
	}
	return true
}

func isValidHeaderName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\r\n:")
}
