// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// every route below requires the access header
	router.Group(func(r chi.Router) {
		r.Use(h.withAccessGate)

		r.Post("/deliver", h.deliver)
		r.Get("/track/{package_id}", h.track)

		r.Get("/packages/destination/{destination}", h.listByDestination)
		r.Get("/packages/speed/{speed}", h.listBySpeed)
		r.Get("/packages/count", h.count)

		r.Get("/version", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
