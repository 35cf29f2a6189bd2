// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrPackageNotFound is returned by Track when no package has the
	// requested id.
	ErrPackageNotFound = errors.New("package id not found")

	// ErrIDSpaceExhausted is returned in strict id mode when every
	// generated candidate id was already taken.
	ErrIDSpaceExhausted = errors.New("could not generate a free package id")

	ErrRegistryFailure = errors.New("package registry failure")
)
