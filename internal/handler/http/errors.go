// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrAccessDenied is sent with 401 when the access gate rejects a request.
var ErrAccessDenied = errors.New("access header is missing")

// Response texts that clients match on verbatim.
const (
	// packageNotFoundMessage is the error body of a track miss.
	packageNotFoundMessage = "Package ID not found"

	// invalidJSONMessage is sent with 400 when the request body cannot be
	// decoded into the expected payload.
	invalidJSONMessage = "Invalid JSON was passed"
)
