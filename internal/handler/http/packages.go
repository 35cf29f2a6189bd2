// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/service"
	"github.com/MKhiriev/go-parcel-tracker/internal/utils"
	"github.com/MKhiriev/go-parcel-tracker/models"
)

func (h *Handler) deliver(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.DeliveryRequest
	if err := utils.ReadJSON(r.Body, &request); err != nil {
		log.Err(err).Str("func", "*Handler.deliver").Msg("invalid JSON was passed")
		http.Error(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	response, err := h.services.PackageService.Deliver(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deliver").Msg("error registering package")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, response)
}

func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	response, err := h.services.PackageService.Track(r.Context(), pathValue(r, "package_id"))
	switch {
	case errors.Is(err, service.ErrPackageNotFound):
		// a miss is a normal answer, not an HTTP error
		h.writeJSON(w, r, models.ErrorResponse{Error: packageNotFoundMessage})
		return
	case err != nil:
		log.Err(err).Str("func", "*Handler.track").Msg("error tracking package")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, response)
}

func (h *Handler) listByDestination(w http.ResponseWriter, r *http.Request) {
	packages, err := h.services.PackageService.ListByDestination(r.Context(), pathValue(r, "destination"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listByDestination").Msg("error listing packages")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, models.NewPackageListResponse(packages))
}

func (h *Handler) listBySpeed(w http.ResponseWriter, r *http.Request) {
	packages, err := h.services.PackageService.ListBySpeed(r.Context(), pathValue(r, "speed"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listBySpeed").Msg("error listing packages")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, models.NewPackageListResponse(packages))
}

func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.PackageService.Count(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.count").Msg("error counting packages")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, r, models.PackageCountResponse{PackageCount: count})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// pathValue returns the decoded chi URL parameter. chi routes on
// r.URL.RawPath when it is set (escaped slashes and the like) and hands out
// still-escaped segments only in that case.
func pathValue(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
