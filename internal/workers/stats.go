// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/store"
)

// statsWorker periodically logs the number of registered packages.
type statsWorker struct {
	registry store.Registry
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewStatsWorker(registry store.Registry, interval time.Duration, logger *logger.Logger) Worker {
	return &statsWorker{
		registry: registry,
		interval: interval,
		logger:   logger,
	}
}

// Start restarts the reporter if it is already running.
func (s *statsWorker) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.report(jobCtx)
			}
		}
	}()
}

func (s *statsWorker) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *statsWorker) report(ctx context.Context) {
	count, err := s.registry.Count(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*statsWorker.report").Msg("error counting packages")
		return
	}

	s.logger.Info().Int("package_count", count).Msg("registry stats")
}
