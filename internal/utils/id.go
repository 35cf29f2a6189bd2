// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// PackageIDLength is the number of characters in a generated package ID.
const PackageIDLength = 10

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// maxUnbiasedByte is the largest multiple of len(alphanumeric) that fits in
// a byte. Random bytes at or above it are discarded so that every symbol is
// picked with the same probability.
const maxUnbiasedByte = 256 - 256%len(alphanumeric)

// IDGenerator produces string identifiers.
type IDGenerator interface {
	Generate() string
}

// PackageIDGenerator produces short alphanumeric package identifiers.
//
// Identifiers are PackageIDLength characters long and drawn uniformly from
// [A-Za-z0-9] using crypto/rand. The generator does not consult any state,
// so two calls may in theory return the same value; callers that need
// uniqueness must check for it themselves.
type PackageIDGenerator struct {
}

func NewPackageIDGenerator() *PackageIDGenerator {
	return &PackageIDGenerator{}
}

func (g *PackageIDGenerator) Generate() string {
	id := make([]byte, 0, PackageIDLength)
	buf := make([]byte, PackageIDLength*2)

	for len(id) < PackageIDLength {
		// crypto/rand.Read never returns an error on supported platforms
		rand.Read(buf)
		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue
			}
			id = append(id, alphanumeric[int(b)%len(alphanumeric)])
			if len(id) == PackageIDLength {
				break
			}
		}
	}

	return string(id)
}

// UUIDGenerator produces request trace identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
