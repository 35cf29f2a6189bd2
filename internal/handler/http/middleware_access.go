// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
)

// AccessGate decides whether a request may reach the domain handlers.
type AccessGate interface {
	Admit(r *http.Request) bool
}

// HeaderPresenceGate admits a request if and only if it carries the
// configured header. The header value, even an empty one, is never
// inspected: this is a presence check, not authentication.
type HeaderPresenceGate struct {
	header string
}

func NewHeaderPresenceGate(header string) *HeaderPresenceGate {
	return &HeaderPresenceGate{header: http.CanonicalHeaderKey(header)}
}

func (g *HeaderPresenceGate) Admit(r *http.Request) bool {
	_, present := r.Header[g.header]
	return present
}

// Header returns the canonical name of the required header.
func (g *HeaderPresenceGate) Header() string {
	return g.header
}

// withAccessGate rejects requests not admitted by h.gate with 401. A
// rejected request never reaches the service layer.
func (h *Handler) withAccessGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.gate.Admit(r) {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg(ErrAccessDenied.Error())
			http.Error(w, ErrAccessDenied.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
