// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-parcel-tracker/internal/config"
	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/store"
	"github.com/MKhiriev/go-parcel-tracker/internal/utils"
)

type Services struct {
	PackageService PackageService
	AppInfoService AppInfoService
}

// NewServices wires the domain services over storages. The package service
// is wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	packageService := NewPackageService(storages.Registry, utils.NewPackageIDGenerator(), cfg.App, logger)

	return &Services{
		PackageService: NewPackageValidationService().Wrap(packageService),
		AppInfoService: appInfoService,
	}, nil
}
