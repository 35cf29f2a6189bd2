// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/models"
)

// memoryRegistry is the default [Registry]: a map guarded by a single
// RWMutex. Writers hold the lock exclusively, so readers never see a
// half-written entry. It never returns an error.
type memoryRegistry struct {
	mu       sync.RWMutex
	packages map[string]models.Package

	logger *logger.Logger
}

// NewMemoryRegistry returns an empty in-memory [Registry]. Its contents
// live exactly as long as the returned value.
func NewMemoryRegistry(logger *logger.Logger) Registry {
	logger.Debug().Msg("creating in-memory package registry")
	return &memoryRegistry{
		packages: make(map[string]models.Package),
		logger:   logger,
	}
}

func (r *memoryRegistry) Insert(ctx context.Context, id string, pkg models.Package) error {
	pkg.PackageID = id

	r.mu.Lock()
	r.packages[id] = pkg
	r.mu.Unlock()

	return nil
}

func (r *memoryRegistry) InsertIfAbsent(ctx context.Context, id string, pkg models.Package) (bool, error) {
	pkg.PackageID = id

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.packages[id]; taken {
		return false, nil
	}
	r.packages[id] = pkg

	return true, nil
}

func (r *memoryRegistry) Get(ctx context.Context, id string) (models.Package, bool, error) {
	r.mu.RLock()
	pkg, ok := r.packages[id]
	r.mu.RUnlock()

	return pkg, ok, nil
}

func (r *memoryRegistry) ListByDestination(ctx context.Context, destination string) ([]models.Package, error) {
	return r.filter(func(pkg models.Package) bool {
		return pkg.Destination == destination
	}), nil
}

func (r *memoryRegistry) ListBySpeed(ctx context.Context, speed string) ([]models.Package, error) {
	return r.filter(func(pkg models.Package) bool {
		return pkg.Speed == speed
	}), nil
}

func (r *memoryRegistry) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.packages), nil
}

// filter scans every entry. The result follows map iteration order, which
// is unspecified and differs between calls.
func (r *memoryRegistry) filter(match func(models.Package) bool) []models.Package {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]models.Package, 0)
	for _, pkg := range r.packages {
		if match(pkg) {
			found = append(found, pkg)
		}
	}

	return found
}
