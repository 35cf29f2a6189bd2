// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-parcel-tracker/models"
)

// PackageService translates delivery and tracking requests into registry
// operations and builds the response payloads.
type PackageService interface {
	// Deliver registers a new package leaving the origin location and
	// returns its generated id with a human-readable status line.
	Deliver(ctx context.Context, request models.DeliveryRequest) (models.DeliveryResponse, error)

	// Track returns the stored record for id. A miss yields ErrPackageNotFound.
	Track(ctx context.Context, id string) (models.TrackingResponse, error)

	// ListByDestination returns every package whose destination equals
	// destination exactly. The result is never nil.
	ListByDestination(ctx context.Context, destination string) ([]models.Package, error)

	// ListBySpeed returns every package whose speed equals speed exactly.
	// The result is never nil.
	ListBySpeed(ctx context.Context, speed string) ([]models.Package, error)

	// Count returns the number of registered packages.
	Count(ctx context.Context) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PackageServiceWrapper defines middleware composition for PackageService.
// Implementations wrap an existing PackageService to add behavior such as
// validation.
type PackageServiceWrapper interface {
	Wrap(PackageService) PackageService
}
