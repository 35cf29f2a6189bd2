// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client for the parcel
// tracking server.
//
// The primary abstraction is [TrackerAdapter], which decouples the CLI from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPTrackerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-parcel-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TrackerAdapter defines transport-agnostic communication with the parcel
// tracking server. Implementations attach the access header to every request
// and map transport-level errors to the sentinel values defined in this
// package.
type TrackerAdapter interface {
	// Deliver registers a new package bound for destination at the given
	// speed and returns the server's delivery confirmation.
	Deliver(ctx context.Context, destination, speed string) (models.DeliveryResponse, error)

	// Track fetches the current state of the package with the given id.
	// Returns [ErrPackageNotFound] (wrapped) when the server reports an
	// unknown id.
	Track(ctx context.Context, id string) (models.TrackingResponse, error)

	// ListByDestination returns every package bound for destination.
	ListByDestination(ctx context.Context, destination string) ([]models.Package, error)

	// ListBySpeed returns every package travelling at speed.
	ListBySpeed(ctx context.Context, speed string) ([]models.Package, error)

	// Count returns the number of registered packages.
	Count(ctx context.Context) (int, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
