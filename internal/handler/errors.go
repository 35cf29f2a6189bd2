// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoAccessHeader is returned by NewHandlers when the access gate has
	// no header name to check.
	errNoAccessHeader = errors.New("access header name is empty")
)
