// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	packagesTable = "packages"

	columnPackageID       = "package_id"
	columnDestination     = "destination"
	columnCurrentLocation = "current_location"
	columnSpeed           = "speed"
)

var packageColumns = []string{
	columnPackageID,
	columnDestination,
	columnCurrentLocation,
	columnSpeed,
}

// insertPackageQuery builds an INSERT for one package. mode is an SQLite
// conflict clause ("OR REPLACE", "OR IGNORE").
func insertPackageQuery(mode, id string, destination, currentLocation, speed string) (string, []any, error) {
	return sq.Insert(packagesTable).
		Options(mode).
		Columns(packageColumns...).
		Values(id, destination, currentLocation, speed).
		ToSql()
}

func selectPackageByIDQuery(id string) (string, []any, error) {
	return sq.Select(packageColumns...).
		From(packagesTable).
		Where(sq.Eq{columnPackageID: id}).
		ToSql()
}

// selectPackagesWhereQuery builds a SELECT filtered by exact equality on
// column. No ORDER BY is added: result order is unspecified.
func selectPackagesWhereQuery(column, value string) (string, []any, error) {
	return sq.Select(packageColumns...).
		From(packagesTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func countPackagesQuery() (string, []any, error) {
	return sq.Select("COUNT(*)").
		From(packagesTable).
		ToSql()
}
