// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-parcel-tracker/internal/config"
	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
)

// Storages groups the storage components of the server.
type Storages struct {
	Registry Registry

	db *DB
}

// NewStorages builds the package registry selected by cfg.Registry.Backend.
// For the sqlite backend it opens the database and applies migrations.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("backend", cfg.Registry.Backend).Msg("creating new storages...")

	switch cfg.Registry.Backend {
	case config.BackendMemory:
		return &Storages{Registry: NewMemoryRegistry(logger)}, nil

	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Registry, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{Registry: NewSQLRegistry(db, logger), db: db}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegistryBackend, cfg.Registry.Backend)
	}
}

// Close releases the database connection, if any. Closing the last
// connection of an in-memory database discards its contents.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
