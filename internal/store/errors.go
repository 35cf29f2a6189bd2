// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrUnknownRegistryBackend is returned by NewStorages when the
	// configured backend name is neither "memory" nor "sqlite".
	ErrUnknownRegistryBackend = errors.New("unknown registry backend")

	// ErrConnectingDB is returned when the SQLite database cannot be opened
	// or does not answer a ping.
	ErrConnectingDB = errors.New("error connecting database")
)

// Low-level database operation errors returned (wrapped) by the SQL
// registry when a statement fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a single result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan package row")

	// ErrScanningRows is returned when iterating over a result set fails.
	ErrScanningRows = errors.New("failed to scan package rows")
)
