// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeliveryResponse is returned after a package has been registered.
type DeliveryResponse struct {
	// PackageID is the freshly generated identifier of the package.
	PackageID string `json:"package_id"`

	// Status is a human-readable description of the started journey.
	Status string `json:"status"`
}

// TrackingResponse describes a known package together with a synthesized
// tracking sentence.
type TrackingResponse struct {
	PackageID       string `json:"package_id"`
	Destination     string `json:"destination"`
	CurrentLocation string `json:"current_location"`
	Speed           string `json:"speed"`
	TrackingInfo    string `json:"tracking_info"`
}

// ErrorResponse carries a domain-level error inside a successful response,
// e.g. when a tracked package does not exist.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PackageListResponse is returned by the destination and speed queries.
// Packages is never nil so that an empty result encodes as [] and not null.
type PackageListResponse struct {
	Packages []Package `json:"packages"`
}

// PackageCountResponse is returned by the count query.
type PackageCountResponse struct {
	PackageCount int `json:"package_count"`
}

// NewPackageListResponse wraps packages, replacing nil with an empty slice.
func NewPackageListResponse(packages []Package) PackageListResponse {
	if packages == nil {
		packages = []Package{}
	}
	return PackageListResponse{Packages: packages}
}
