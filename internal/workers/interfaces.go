// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background jobs next to the HTTP server.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start launches the job and returns immediately; the job runs until ctx is
// cancelled or Stop is called. Stop blocks until the job has exited and is
// a no-op when the job is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
