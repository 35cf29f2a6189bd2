// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/MKhiriev/go-parcel-tracker/internal/config"
	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/mock"
	"github.com/MKhiriev/go-parcel-tracker/internal/service"
	"github.com/MKhiriev/go-parcel-tracker/internal/store"
	"github.com/MKhiriev/go-parcel-tracker/internal/utils"
	"github.com/MKhiriev/go-parcel-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// sequenceIDGenerator hands out ids in order and repeats the last one.
type sequenceIDGenerator struct {
	mu  sync.Mutex
	ids []string
	n   int
}

func (g *sequenceIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.ids[min(g.n, len(g.ids)-1)]
	g.n++
	return id
}

func strPtr(s string) *string { return &s }

func newMockedPackageService(t *testing.T, cfg config.App, ids ...string) (service.PackageService, *mock.MockRegistry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistry(ctrl)
	if len(ids) == 0 {
		ids = []string{"AbCdEf1234"}
	}

	return service.NewPackageService(registry, &sequenceIDGenerator{ids: ids}, cfg, logger.Nop()), registry
}

func newRealPackageService(t *testing.T) service.PackageService {
	t.Helper()

	registry := store.NewMemoryRegistry(logger.Nop())
	svc := service.NewPackageService(registry, utils.NewPackageIDGenerator(), config.App{}, logger.Nop())
	return service.NewPackageValidationService().Wrap(svc)
}

// ─────────────────────────────────────────────
// Deliver
// ─────────────────────────────────────────────

func TestDeliver_StoresRecordAndBuildsStatus(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{})

	registry.EXPECT().
		Insert(gomock.Any(), "AbCdEf1234", models.Package{
			PackageID:       "AbCdEf1234",
			Destination:     "Jupiter",
			CurrentLocation: "Earth",
			Speed:           "warp",
		}).
		Return(nil)

	resp, err := svc.Deliver(context.Background(), models.NewDeliveryRequest("Jupiter", "warp"))

	require.NoError(t, err)
	assert.Equal(t, "AbCdEf1234", resp.PackageID)
	assert.Equal(t, "Package en route to Jupiter with warp", resp.Status)
}

func TestDeliver_CustomOriginLocation(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{OriginLocation: "Luna"})

	registry.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Cond(func(x any) bool {
			pkg, ok := x.(models.Package)
			return ok && pkg.CurrentLocation == "Luna"
		})).
		Return(nil)

	_, err := svc.Deliver(context.Background(), models.NewDeliveryRequest("Mars", "slow"))
	require.NoError(t, err)
}

func TestDeliver_EmptyStringsAccepted(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{})
	registry.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := svc.Deliver(context.Background(), models.NewDeliveryRequest("", ""))

	require.NoError(t, err)
	assert.Equal(t, "Package en route to  with ", resp.Status)
}

func TestDeliver_MissingFields(t *testing.T) {
	svc, _ := newMockedPackageService(t, config.App{})

	_, err := svc.Deliver(context.Background(), models.DeliveryRequest{Destination: strPtr("Mars")})

	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestDeliver_RegistryError(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{})
	registry.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := svc.Deliver(context.Background(), models.NewDeliveryRequest("Mars", "warp"))

	assert.ErrorIs(t, err, service.ErrRegistryFailure)
}

func TestDeliver_StrictIDs(t *testing.T) {
	tests := []struct {
		name    string
		taken   int
		wantID  string
		wantErr error
	}{
		{name: "first id free", taken: 0, wantID: "id-1"},
		{name: "two collisions", taken: 2, wantID: "id-3"},
		{name: "last attempt succeeds", taken: service.MaxIDAttempts - 1, wantID: "id-5"},
		{name: "every attempt collides", taken: service.MaxIDAttempts, wantErr: service.ErrIDSpaceExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, registry := newMockedPackageService(t, config.App{StrictIDs: true},
				"id-1", "id-2", "id-3", "id-4", "id-5", "id-6")

			calls := 0
			registry.EXPECT().
				InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, id string, pkg models.Package) (bool, error) {
					calls++
					assert.Equal(t, id, pkg.PackageID)
					return calls > tt.taken, nil
				}).
				MaxTimes(service.MaxIDAttempts)

			resp, err := svc.Deliver(context.Background(), models.NewDeliveryRequest("Mars", "warp"))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, service.MaxIDAttempts, calls)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, resp.PackageID)
		})
	}
}

func TestDeliver_StrictIDs_RegistryError(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{StrictIDs: true})
	registry.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("boom"))

	_, err := svc.Deliver(context.Background(), models.NewDeliveryRequest("Mars", "warp"))

	assert.ErrorIs(t, err, service.ErrRegistryFailure)
}

// ─────────────────────────────────────────────
// Track
// ─────────────────────────────────────────────

func TestTrack_Found(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{})
	registry.EXPECT().
		Get(gomock.Any(), "AbCdEf1234").
		Return(models.Package{PackageID: "AbCdEf1234", Destination: "Jupiter", CurrentLocation: "Earth", Speed: "warp"}, true, nil)

	resp, err := svc.Track(context.Background(), "AbCdEf1234")

	require.NoError(t, err)
	assert.Equal(t, models.TrackingResponse{
		PackageID:       "AbCdEf1234",
		Destination:     "Jupiter",
		CurrentLocation: "Earth",
		Speed:           "warp",
		TrackingInfo:    "Package is currently at Earth en route to Jupiter",
	}, resp)
}

func TestTrack_NotFound(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{})
	registry.EXPECT().Get(gomock.Any(), "missing").Return(models.Package{}, false, nil)

	_, err := svc.Track(context.Background(), "missing")

	assert.ErrorIs(t, err, service.ErrPackageNotFound)
	assert.Equal(t, "package id not found", err.Error())
}

func TestTrack_RegistryError(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{})
	registry.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.Package{}, false, errors.New("boom"))

	_, err := svc.Track(context.Background(), "id")

	assert.ErrorIs(t, err, service.ErrRegistryFailure)
	assert.NotErrorIs(t, err, service.ErrPackageNotFound)
}

// ─────────────────────────────────────────────
// Lists and count
// ─────────────────────────────────────────────

func TestListByDestination_NilBecomesEmpty(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{})
	registry.EXPECT().ListByDestination(gomock.Any(), "Pluto").Return(nil, nil)

	got, err := svc.ListByDestination(context.Background(), "Pluto")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListBySpeed_PassesThrough(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{})
	want := []models.Package{{PackageID: "a", Speed: "warp"}}
	registry.EXPECT().ListBySpeed(gomock.Any(), "warp").Return(want, nil)

	got, err := svc.ListBySpeed(context.Background(), "warp")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLists_RegistryError(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{})
	registry.EXPECT().ListBySpeed(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	registry.EXPECT().ListByDestination(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	registry.EXPECT().Count(gomock.Any()).Return(0, errors.New("boom"))

	_, err := svc.ListBySpeed(context.Background(), "warp")
	assert.ErrorIs(t, err, service.ErrRegistryFailure)

	_, err = svc.ListByDestination(context.Background(), "Mars")
	assert.ErrorIs(t, err, service.ErrRegistryFailure)

	_, err = svc.Count(context.Background())
	assert.ErrorIs(t, err, service.ErrRegistryFailure)
}

func TestCount(t *testing.T) {
	svc, registry := newMockedPackageService(t, config.App{})
	registry.EXPECT().Count(gomock.Any()).Return(7, nil)

	count, err := svc.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

// ─────────────────────────────────────────────
// Behaviour over the in-memory registry
// ─────────────────────────────────────────────

func TestPackageService_RoundTrip(t *testing.T) {
	svc := newRealPackageService(t)
	ctx := context.Background()

	delivered, err := svc.Deliver(ctx, models.NewDeliveryRequest("Jupiter", "warp"))
	require.NoError(t, err)
	assert.Len(t, delivered.PackageID, utils.PackageIDLength)
	assert.Equal(t, "Package en route to Jupiter with warp", delivered.Status)

	tracked, err := svc.Track(ctx, delivered.PackageID)
	require.NoError(t, err)
	assert.Equal(t, delivered.PackageID, tracked.PackageID)
	assert.Equal(t, "Jupiter", tracked.Destination)
	assert.Equal(t, "Earth", tracked.CurrentLocation)
	assert.Equal(t, "warp", tracked.Speed)
	assert.Equal(t, "Package is currently at Earth en route to Jupiter", tracked.TrackingInfo)

	byDest, err := svc.ListByDestination(ctx, "Jupiter")
	require.NoError(t, err)
	require.Len(t, byDest, 1)
	assert.Equal(t, delivered.PackageID, byDest[0].PackageID)

	bySpeed, err := svc.ListBySpeed(ctx, "warp")
	require.NoError(t, err)
	require.Len(t, bySpeed, 1)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPackageService_NotFoundIsIdempotent(t *testing.T) {
	svc := newRealPackageService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Track(ctx, "0000000000")
		assert.ErrorIs(t, err, service.ErrPackageNotFound)
	}

	_, err := svc.Track(ctx, "")
	assert.ErrorIs(t, err, service.ErrPackageNotFound)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestPackageService_FilterAndCountConsistency(t *testing.T) {
	svc := newRealPackageService(t)
	ctx := context.Background()

	seed := []struct{ destination, speed string }{
		{"Mars", "warp"}, {"Mars", "slow"}, {"Venus", "warp"}, {"Jupiter", "light"},
	}
	for _, s := range seed {
		_, err := svc.Deliver(ctx, models.NewDeliveryRequest(s.destination, s.speed))
		require.NoError(t, err)
	}

	mars, err := svc.ListByDestination(ctx, "Mars")
	require.NoError(t, err)
	assert.Len(t, mars, 2)
	for _, pkg := range mars {
		assert.Equal(t, "Mars", pkg.Destination)
	}

	warp, err := svc.ListBySpeed(ctx, "warp")
	require.NoError(t, err)
	assert.Len(t, warp, 2)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seed), count)
}

func TestPackageService_ConcurrentDeliveriesGetDistinctIDs(t *testing.T) {
	svc := newRealPackageService(t)
	ctx := context.Background()

	const n = 500
	ids := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.Deliver(ctx, models.NewDeliveryRequest(fmt.Sprintf("planet-%d", i%7), "warp"))
			assert.NoError(t, err)
			ids[i] = resp.PackageID
		}(i)
	}
	wg.Wait()

	sort.Strings(ids)
	for i := 1; i < n; i++ {
		assert.NotEqual(t, ids[i-1], ids[i], "duplicate package id")
	}

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)
}
