// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrTrailingJSONData is returned by ReadJSON when the body holds more than
// one JSON value.
var ErrTrailingJSONData = errors.New("unexpected data after JSON value")

// WriteJSON serializes data to JSON and writes it with the given status code
// and an "application/json" Content-Type.
//
// If marshaling fails the client gets 500 Internal Server Error and the
// wrapped marshaling error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.PackageCountResponse{PackageCount: 3}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes a plain-text body with the given status code.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}

// ReadJSON decodes exactly one JSON value from body into v.
//
// Type mismatches (e.g. a number where a string is expected) and syntax
// errors are returned as-is; anything after the first value results in
// [ErrTrailingJSONData].
func ReadJSON(body io.Reader, v any) error {
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(v); err != nil {
		return err
	}

	if decoder.More() {
		return ErrTrailingJSONData
	}

	return nil
}
