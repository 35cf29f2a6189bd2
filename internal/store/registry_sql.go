// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/models"
)

// sqlRegistry is a [Registry] backed by an in-memory SQLite database.
//
// Its connection pool holds a single connection, so statements are executed
// one at a time and each INSERT is atomic with respect to readers.
type sqlRegistry struct {
	db *DB

	logger *logger.Logger
}

// NewSQLRegistry constructs a [Registry] on top of an already migrated
// database.
func NewSQLRegistry(db *DB, logger *logger.Logger) Registry {
	logger.Debug().Msg("creating sql package registry")
	return &sqlRegistry{
		db:     db,
		logger: logger,
	}
}

func (r *sqlRegistry) Insert(ctx context.Context, id string, pkg models.Package) error {
	_, err := r.insert(ctx, "OR REPLACE", id, pkg)
	return err
}

func (r *sqlRegistry) InsertIfAbsent(ctx context.Context, id string, pkg models.Package) (bool, error) {
	return r.insert(ctx, "OR IGNORE", id, pkg)
}

func (r *sqlRegistry) insert(ctx context.Context, mode, id string, pkg models.Package) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertPackageQuery(mode, id, pkg.Destination, pkg.CurrentLocation, pkg.Speed)
	if err != nil {
		log.Err(err).Str("func", "*sqlRegistry.insert").Msg("error building insert query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRegistry.insert").Str("package_id", id).Msg("error inserting package")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *sqlRegistry) Get(ctx context.Context, id string) (models.Package, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPackageByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*sqlRegistry.Get").Msg("error building select query")
		return models.Package{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var pkg models.Package
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&pkg.PackageID, &pkg.Destination, &pkg.CurrentLocation, &pkg.Speed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Package{}, false, nil
	case err != nil:
		log.Err(err).Str("func", "*sqlRegistry.Get").Str("package_id", id).Msg("error scanning package")
		return models.Package{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return pkg, true, nil
}

func (r *sqlRegistry) ListByDestination(ctx context.Context, destination string) ([]models.Package, error) {
	return r.listWhere(ctx, columnDestination, destination)
}

func (r *sqlRegistry) ListBySpeed(ctx context.Context, speed string) ([]models.Package, error) {
	return r.listWhere(ctx, columnSpeed, speed)
}

func (r *sqlRegistry) listWhere(ctx context.Context, column, value string) ([]models.Package, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPackagesWhereQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*sqlRegistry.listWhere").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRegistry.listWhere").Str("column", column).Msg("error querying packages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	found := make([]models.Package, 0)
	for rows.Next() {
		var pkg models.Package
		if err = rows.Scan(&pkg.PackageID, &pkg.Destination, &pkg.CurrentLocation, &pkg.Speed); err != nil {
			log.Err(err).Str("func", "*sqlRegistry.listWhere").Msg("error scanning package row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		found = append(found, pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return found, nil
}

func (r *sqlRegistry) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := countPackagesQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*sqlRegistry.Count").Msg("error counting packages")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
