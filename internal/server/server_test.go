// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-parcel-tracker/internal/config"
	"github.com/MKhiriev/go-parcel-tracker/internal/handler"
	myHTTP "github.com/MKhiriev/go-parcel-tracker/internal/handler/http"
	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/service"
	"github.com/MKhiriev/go-parcel-tracker/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, myHTTP.NewHeaderPresenceGate("X-Interstellar-Token"), 0, logger.Nop()),
	}
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  error
	}{
		{name: "http server", handlers: newTestHandlers(), cfg: config.Server{HTTPAddress: "127.0.0.1:0"}},
		{name: "no address", handlers: newTestHandlers(), cfg: config.Server{}, wantErr: errNoAddress},
		{name: "no handlers", handlers: nil, cfg: config.Server{HTTPAddress: "127.0.0.1:0"}, wantErr: errNoHTTPHandler},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: "127.0.0.1:0"}, wantErr: errNoHTTPHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, nil, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s, err := NewServer(newTestHandlers(), &workers.Workers{}, config.Server{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.(*server).run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestServer_RunReturnsWhenAddressIsBusy(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s, err := NewServer(newTestHandlers(), &workers.Workers{}, config.Server{
		HTTPAddress:     busy.Addr().String(),
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- s.(*server).run(context.Background())
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errListen)
	case <-time.After(3 * time.Second):
		t.Fatal("run kept blocking after the listener failed")
	}
}

func TestHTTPServer_ShutdownWithoutStart(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}, logger.Nop())

	// shutting down an idle server must not block
	h.Shutdown()
}

func TestHTTPServer_ServesHandler(t *testing.T) {
	h := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	// reuse the configured http.Server behind a test listener
	ts := httptest.NewUnstartedServer(h.server.Handler)
	ts.Config = h.server
	ts.Start()
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}
