// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestStatsWorker_ReportsPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistry(ctrl)

	var calls atomic.Int32
	registry.EXPECT().Count(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		calls.Add(1)
		return 3, nil
	}).MinTimes(2)

	w := NewStatsWorker(registry, 5*time.Millisecond, logger.Nop())
	w.Start(context.Background())

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	w.Stop()
}

func TestStatsWorker_CountErrorKeepsRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistry(ctrl)

	var calls atomic.Int32
	registry.EXPECT().Count(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errors.New("db down")
	}).MinTimes(2)

	w := NewStatsWorker(registry, 5*time.Millisecond, logger.Nop())
	w.Start(context.Background())

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	w.Stop()
}

func TestStatsWorker_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistry(ctrl)
	registry.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	w := NewStatsWorker(registry, time.Millisecond, logger.Nop()).(*statsWorker)
	w.Start(ctx)

	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stats worker did not exit after context cancel")
	}

	// Stop after the job already exited is a no-op
	w.Stop()
}

func TestStatsWorker_StopWithoutStart(t *testing.T) {
	w := NewStatsWorker(nil, time.Second, logger.Nop())

	// must not block or panic
	w.Stop()
}
