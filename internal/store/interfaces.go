// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-parcel-tracker/models"
)

// Registry stores package records keyed by package ID.
//
// Implementations must be safe for concurrent use without external
// synchronization, and no caller may observe a partially inserted record.
// Entries are never removed.
//
// The error results report backend failures only. A missing package is not
// an error: Get reports it through its boolean result, and the list
// queries return an empty slice.
type Registry interface {
	// Insert stores pkg under id. An existing entry with the same id is
	// replaced; no uniqueness check is performed.
	Insert(ctx context.Context, id string, pkg models.Package) error

	// InsertIfAbsent stores pkg under id only if id is not taken yet and
	// reports whether it did. The check and the insert are atomic.
	InsertIfAbsent(ctx context.Context, id string, pkg models.Package) (bool, error)

	// Get returns the package stored under id and whether it exists.
	Get(ctx context.Context, id string) (models.Package, bool, error)

	// ListByDestination returns all packages whose destination equals
	// destination exactly (case-sensitive). The order is unspecified.
	ListByDestination(ctx context.Context, destination string) ([]models.Package, error)

	// ListBySpeed returns all packages whose speed equals speed exactly
	// (case-sensitive). The order is unspecified.
	ListBySpeed(ctx context.Context, speed string) ([]models.Package, error)

	// Count returns the number of stored packages.
	Count(ctx context.Context) (int, error)
}
