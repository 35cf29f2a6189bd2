// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Package is a single delivery registered in the tracker.
//
// Destination and Speed are supplied by the client when the delivery is
// created and never change afterwards. CurrentLocation is set to the origin
// location at creation time; nothing advances it in the current scope.
type Package struct {
	// PackageID is the registry key. It is not part of the stored record
	// itself but is carried along so query results can be returned as
	// self-describing values.
	PackageID string `json:"package_id"`

	// Destination is the free-form destination name given by the client.
	Destination string `json:"destination"`

	// CurrentLocation is where the package currently is.
	CurrentLocation string `json:"current_location"`

	// Speed is the free-form speed tier label given by the client.
	Speed string `json:"speed"`
}
