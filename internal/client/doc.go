// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It calls the tracking server through an [adapter.TrackerAdapter] and
// renders every answer as a small styled page on the configured writer.
package client
