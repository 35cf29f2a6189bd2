// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-parcel-tracker/internal/config"
	"github.com/MKhiriev/go-parcel-tracker/internal/logger"
	"github.com/MKhiriev/go-parcel-tracker/internal/utils"
	"github.com/MKhiriev/go-parcel-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpTrackerAdapter struct {
	client *utils.HTTPClient

	accessHeader string
	accessToken  string

	logger *logger.Logger
}

// NewHTTPTrackerAdapter constructs an HTTP/REST implementation of
// [TrackerAdapter]. It normalises the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns [ErrInvalidAddress] (wrapped) if cfg.HTTPAddress is empty or cannot
// be parsed as a valid URL.
func NewHTTPTrackerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (TrackerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpTrackerAdapter{
		client:       utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		accessHeader: cfg.AccessHeader,
		accessToken:  cfg.AccessToken,
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Deliver implements [TrackerAdapter]. It POSTs the destination and speed to
// POST /deliver.
func (h *httpTrackerAdapter) Deliver(ctx context.Context, destination, speed string) (models.DeliveryResponse, error) {
	var result models.DeliveryResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeliveryRequest{Destination: &destination, Speed: &speed}).
		SetResult(&result).
		Post("/deliver")
	if err != nil {
		return models.DeliveryResponse{}, fmt.Errorf("deliver request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeliveryResponse{}, err
	}

	return result, nil
}

// Track implements [TrackerAdapter]. The server answers an unknown id with
// 200 and an error body, which is turned into [ErrPackageNotFound].
func (h *httpTrackerAdapter) Track(ctx context.Context, id string) (models.TrackingResponse, error) {
	var result struct {
		models.TrackingResponse
		Error string `json:"error"`
	}

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Get("/track/{id}")
	if err != nil {
		return models.TrackingResponse{}, fmt.Errorf("track request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrackingResponse{}, err
	}
	if result.Error != "" {
		return models.TrackingResponse{}, fmt.Errorf("%w: %s", ErrPackageNotFound, result.Error)
	}

	return result.TrackingResponse, nil
}

// ListByDestination implements [TrackerAdapter] via
// GET /packages/destination/{destination}.
func (h *httpTrackerAdapter) ListByDestination(ctx context.Context, destination string) ([]models.Package, error) {
	return h.list(ctx, "/packages/destination/{value}", destination)
}

// ListBySpeed implements [TrackerAdapter] via GET /packages/speed/{speed}.
func (h *httpTrackerAdapter) ListBySpeed(ctx context.Context, speed string) ([]models.Package, error) {
	return h.list(ctx, "/packages/speed/{value}", speed)
}

func (h *httpTrackerAdapter) list(ctx context.Context, path, value string) ([]models.Package, error) {
	var result models.PackageListResponse

	resp, err := h.request(ctx).
		SetPathParam("value", value).
		SetResult(&result).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("list packages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return models.NewPackageListResponse(result.Packages).Packages, nil
}

// Count implements [TrackerAdapter] via GET /packages/count.
func (h *httpTrackerAdapter) Count(ctx context.Context) (int, error) {
	var result models.PackageCountResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/packages/count")
	if err != nil {
		return 0, fmt.Errorf("count request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.PackageCount, nil
}

// Version implements [TrackerAdapter] via GET /version.
func (h *httpTrackerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// request starts a request carrying the access header. The header is sent
// even when the token is empty since the server only checks presence.
func (h *httpTrackerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.accessHeader != "" {
		req.SetHeader(h.accessHeader, h.accessToken)
	}
	return req
}
