// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-parcel-tracker/internal/adapter"
	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/models"
)

// App runs single client commands against the tracking server and prints
// the rendered result to its writer.
type App struct {
	adapter   adapter.TrackerAdapter
	clipboard Clipboard
	build     models.AppBuildInfo
	out       io.Writer
	styles    styles

	logger *logger.Logger
}

// Option customises an [App].
type Option func(*App)

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(a *App) {
		a.clipboard = c
	}
}

// WithBuildInfo sets the client build info shown by Version.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(a *App) {
		a.build = info
	}
}

// NewApp creates an App printing to out.
func NewApp(trackerAdapter adapter.TrackerAdapter, out io.Writer, logger *logger.Logger, opts ...Option) (*App, error) {
	if trackerAdapter == nil {
		return nil, errNoAdapter
	}

	a := &App{
		adapter:   trackerAdapter,
		clipboard: systemClipboard{},
		build:     models.NewAppBuildInfo("", "", ""),
		out:       out,
		styles:    newStyles(out),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Deliver registers a package and prints its id. With copyID set the id is
// also put on the clipboard; a clipboard failure is logged, not returned.
func (a *App) Deliver(ctx context.Context, destination, speed string, copyID bool) error {
	resp, err := a.adapter.Deliver(ctx, destination, speed)
	if err != nil {
		return fmt.Errorf("deliver: %w", err)
	}

	copied := false
	if copyID {
		if err = a.clipboard.WriteAll(resp.PackageID); err != nil {
			a.logger.Warn().Err(err).Str("package_id", resp.PackageID).Msg("copy package id to clipboard")
		} else {
			copied = true
		}
	}

	return a.print(a.styles.renderDelivery(resp, copied))
}

// Track prints the state of a single package.
func (a *App) Track(ctx context.Context, id string) error {
	resp, err := a.adapter.Track(ctx, id)
	if err != nil {
		return fmt.Errorf("track %q: %w", id, err)
	}

	return a.print(a.styles.renderTracking(resp))
}

// ListByDestination prints every package bound for destination.
func (a *App) ListByDestination(ctx context.Context, destination string) error {
	packages, err := a.adapter.ListByDestination(ctx, destination)
	if err != nil {
		return fmt.Errorf("list by destination: %w", err)
	}

	return a.print(a.styles.renderPackages("DESTINATION "+destination, packages))
}

// ListBySpeed prints every package travelling at speed.
func (a *App) ListBySpeed(ctx context.Context, speed string) error {
	packages, err := a.adapter.ListBySpeed(ctx, speed)
	if err != nil {
		return fmt.Errorf("list by speed: %w", err)
	}

	return a.print(a.styles.renderPackages("SPEED "+speed, packages))
}

// Count prints the number of registered packages.
func (a *App) Count(ctx context.Context) error {
	count, err := a.adapter.Count(ctx)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}

	return a.print(a.styles.renderCount(count))
}

// Version prints the server version next to the client build info.
func (a *App) Version(ctx context.Context) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}

	return a.print(a.styles.renderVersion(version, a.build))
}

func (a *App) print(s string) error {
	_, err := io.WriteString(a.out, s)
	return err
}
