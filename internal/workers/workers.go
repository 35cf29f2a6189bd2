// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-parcel-tracker/internal/config"
	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled background workers. The stats reporter is
// enabled by a positive cfg.StatsInterval.
func NewWorkers(registry store.Registry, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.StatsInterval > 0 {
		ws.workers = append(ws.workers, NewStatsWorker(registry, cfg.StatsInterval, logger))
	}

	logger.Info().Int("count", len(ws.workers)).Msg("background workers created")

	return ws
}

// Run starts every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse start order and waits for each one.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
