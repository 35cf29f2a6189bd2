// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingDestination = errors.New("destination is required")
	ErrMissingSpeed       = errors.New("speed is required")
	ErrMissingPackageID   = errors.New("package id is required")
)
