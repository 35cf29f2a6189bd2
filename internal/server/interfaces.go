// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns the listener error when serving could not start or
	// failed, and nil after a signal-driven shutdown.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
