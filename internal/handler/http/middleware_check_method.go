// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod is the router's MethodNotAllowed handler. chi calls it
// only when the path matched a route that does not serve the request
// method, and it answers 404 as for an unknown path instead of chi's
// default 405.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
