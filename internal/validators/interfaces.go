// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound package data before it reaches the
// registry.
//
// A [Validator] is injected into the service layer, so handlers only decode
// JSON and never inspect field contents themselves. Passing field names to
// Validate narrows the check to those fields.
package validators

import "context"

// Validator validates a value, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
