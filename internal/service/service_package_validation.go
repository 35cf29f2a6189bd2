// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-parcel-tracker/internal/validators"
	"github.com/MKhiriev/go-parcel-tracker/models"
)

// PackageValidationService rejects malformed requests before they reach
// the wrapped PackageService.
type PackageValidationService struct {
	inner     PackageService
	validator validators.Validator
}

func NewPackageValidationService() PackageServiceWrapper {
	return &PackageValidationService{
		validator: validators.NewPackageValidator(),
	}
}

func (v *PackageValidationService) Wrap(inner PackageService) PackageService {
	v.inner = inner
	return v
}

func (v *PackageValidationService) Deliver(ctx context.Context, request models.DeliveryRequest) (models.DeliveryResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.DeliveryResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Deliver(ctx, request)
}

func (v *PackageValidationService) Track(ctx context.Context, id string) (models.TrackingResponse, error) {
	// no package is ever stored under an empty id
	if err := v.validator.Validate(ctx, id, validators.FieldPackageID); err != nil {
		return models.TrackingResponse{}, ErrPackageNotFound
	}

	return v.inner.Track(ctx, id)
}

func (v *PackageValidationService) ListByDestination(ctx context.Context, destination string) ([]models.Package, error) {
	return v.inner.ListByDestination(ctx, destination)
}

func (v *PackageValidationService) ListBySpeed(ctx context.Context, speed string) ([]models.Package, error) {
	return v.inner.ListBySpeed(ctx, speed)
}

func (v *PackageValidationService) Count(ctx context.Context) (int, error) {
	return v.inner.Count(ctx)
}
