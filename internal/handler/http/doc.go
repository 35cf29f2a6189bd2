// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the parcel tracker.
//
// It wires the chi router, decodes requests, encodes JSON responses and
// carries the cross-cutting middleware: request tracing, access logging,
// gzip compression and the access gate guarding every domain route.
package http
