// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-parcel-tracker/internal/config"
	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/store"
	"github.com/MKhiriev/go-parcel-tracker/internal/utils"
	"github.com/MKhiriev/go-parcel-tracker/models"
)

// maxIDAttempts bounds id regeneration in strict mode.
const maxIDAttempts = 5

type packageService struct {
	registry    store.Registry
	idGenerator utils.IDGenerator

	originLocation string
	strictIDs      bool

	logger *logger.Logger
}

// NewPackageService builds the package service on top of registry.
//
// With cfg.StrictIDs unset, a freshly generated id is inserted without a
// collision check and silently replaces any existing package with the same
// id. With it set, taken ids are regenerated up to maxIDAttempts times.
func NewPackageService(registry store.Registry, idGenerator utils.IDGenerator, cfg config.App, logger *logger.Logger) PackageService {
	origin := cfg.OriginLocation
	if origin == "" {
		origin = config.DefaultOriginLocation
	}

	return &packageService{
		registry:       registry,
		idGenerator:    idGenerator,
		originLocation: origin,
		strictIDs:      cfg.StrictIDs,
		logger:         logger,
	}
}

func (s *packageService) Deliver(ctx context.Context, request models.DeliveryRequest) (models.DeliveryResponse, error) {
	log := logger.FromContext(ctx)

	if request.Destination == nil || request.Speed == nil {
		return models.DeliveryResponse{}, ErrInvalidDataProvided
	}

	pkg := models.Package{
		Destination:     *request.Destination,
		CurrentLocation: s.originLocation,
		Speed:           *request.Speed,
	}

	id, err := s.register(ctx, pkg)
	if err != nil {
		log.Err(err).Str("func", "*packageService.Deliver").Msg("error registering package")
		return models.DeliveryResponse{}, err
	}

	log.Info().Str("package_id", id).Str("destination", pkg.Destination).Msg("package registered")

	return models.DeliveryResponse{
		PackageID: id,
		Status:    fmt.Sprintf("Package en route to %s with %s", pkg.Destination, pkg.Speed),
	}, nil
}

func (s *packageService) register(ctx context.Context, pkg models.Package) (string, error) {
	if !s.strictIDs {
		id := s.idGenerator.Generate()
		pkg.PackageID = id
		if err := s.registry.Insert(ctx, id, pkg); err != nil {
			return "", fmt.Errorf("%w: %w", ErrRegistryFailure, err)
		}
		return id, nil
	}

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id := s.idGenerator.Generate()
		pkg.PackageID = id

		inserted, err := s.registry.InsertIfAbsent(ctx, id, pkg)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRegistryFailure, err)
		}
		if inserted {
			return id, nil
		}

		logger.FromContext(ctx).Warn().Str("package_id", id).Int("attempt", attempt).Msg("generated package id is taken")
	}

	return "", ErrIDSpaceExhausted
}

func (s *packageService) Track(ctx context.Context, id string) (models.TrackingResponse, error) {
	pkg, found, err := s.registry.Get(ctx, id)
	if err != nil {
		return models.TrackingResponse{}, fmt.Errorf("%w: %w", ErrRegistryFailure, err)
	}
	if !found {
		return models.TrackingResponse{}, ErrPackageNotFound
	}

	return models.TrackingResponse{
		PackageID:       id,
		Destination:     pkg.Destination,
		CurrentLocation: pkg.CurrentLocation,
		Speed:           pkg.Speed,
		TrackingInfo:    fmt.Sprintf("Package is currently at %s en route to %s", pkg.CurrentLocation, pkg.Destination),
	}, nil
}

func (s *packageService) ListByDestination(ctx context.Context, destination string) ([]models.Package, error) {
	packages, err := s.registry.ListByDestination(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistryFailure, err)
	}

	return nonNil(packages), nil
}

func (s *packageService) ListBySpeed(ctx context.Context, speed string) ([]models.Package, error) {
	packages, err := s.registry.ListBySpeed(ctx, speed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistryFailure, err)
	}

	return nonNil(packages), nil
}

func (s *packageService) Count(ctx context.Context) (int, error) {
	count, err := s.registry.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRegistryFailure, err)
	}

	return count, nil
}

func nonNil(packages []models.Package) []models.Package {
	if packages == nil {
		return []models.Package{}
	}
	return packages
}
