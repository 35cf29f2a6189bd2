// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeliveryRequest is the body of POST /deliver.
//
// Both fields are pointers so that a missing field can be told apart from
// an empty string: missing fields are rejected, empty strings are accepted.
type DeliveryRequest struct {
	Destination *string `json:"destination"`
	Speed       *string `json:"speed"`
}

// NewDeliveryRequest builds a [DeliveryRequest] with both fields set.
func NewDeliveryRequest(destination, speed string) DeliveryRequest {
	return DeliveryRequest{
		Destination: &destination,
		Speed:       &speed,
	}
}
