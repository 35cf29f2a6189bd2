// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestHeaderPresenceGate_Admit(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{name: "header with value", headers: map[string]string{"X-Interstellar-Token": "secret"}, want: true},
		{name: "header with empty value", headers: map[string]string{"X-Interstellar-Token": ""}, want: true},
		{name: "header name in lower case", headers: map[string]string{"x-interstellar-token": "anything"}, want: true},
		{name: "header absent", headers: map[string]string{}, want: false},
		{name: "different header", headers: map[string]string{"Authorization": "Bearer x"}, want: false},
	}

	gate := NewHeaderPresenceGate(testAccessHeader)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, gate.Admit(req))
		})
	}
}

func TestHeaderPresenceGate_CanonicalHeader(t *testing.T) {
	gate := NewHeaderPresenceGate("x-custom-gate")

	assert.Equal(t, "X-Custom-Gate", gate.Header())
}

// denyAll is an AccessGate that rejects every request.
type denyAll struct{}

func (denyAll) Admit(*http.Request) bool { return false }

func TestWithAccessGate(t *testing.T) {
	tests := []struct {
		name       string
		gate       AccessGate
		setHeader  bool
		wantStatus int
		wantNext   bool
	}{
		{name: "admitted", gate: NewHeaderPresenceGate(testAccessHeader), setHeader: true, wantStatus: http.StatusTeapot, wantNext: true},
		{name: "missing header", gate: NewHeaderPresenceGate(testAccessHeader), wantStatus: http.StatusUnauthorized},
		{name: "custom gate rejects", gate: denyAll{}, setHeader: true, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{gate: tt.gate, logger: logger.Nop()}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/packages/count", nil)
			if tt.setHeader {
				req.Header.Set(testAccessHeader, "")
			}
			rec := httptest.NewRecorder()

			h.withAccessGate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
