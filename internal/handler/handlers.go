// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-parcel-tracker/internal/config"
	"github.com/MKhiriev/go-parcel-tracker/internal/handler/http"
	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. The HTTP handler guards every
// domain route with a header-presence gate on cfg.App.AccessHeader.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if cfg.App.AccessHeader == "" {
		return nil, errNoAccessHeader
	}

	gate := http.NewHeaderPresenceGate(cfg.App.AccessHeader)
	logger.Info().Str("access_header", gate.Header()).Msg("access gate configured")

	return &Handlers{
		HTTP: http.NewHandler(services, gate, cfg.Server.RequestTimeout, logger),
	}, nil
}
