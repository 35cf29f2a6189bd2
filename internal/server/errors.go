// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("server: no http handler to serve")
	errNoAddress     = errors.New("server: listen address is empty")
	errListen        = errors.New("server: http listener failed")
)
