// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/service"
	"github.com/MKhiriev/go-parcel-tracker/internal/utils"
)

type Handler struct {
	services *service.Services
	gate     AccessGate

	traceIDs       utils.IDGenerator
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A zero requestTimeout disables the
// per-request deadline.
func NewHandler(services *service.Services, gate AccessGate, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		gate:           gate,
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
