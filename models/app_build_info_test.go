// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                         string
		version, date, commit        string
		wantVersion, wantDate, wantC string
	}{
		{
			name:    "all set",
			version: "v1.0.0", date: "2026-10-01", commit: "abc123",
			wantVersion: "v1.0.0", wantDate: "2026-10-01", wantC: "abc123",
		},
		{
			name:        "empty values become N/A",
			wantVersion: "N/A", wantDate: "N/A", wantC: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.wantC, info.BuildCommit())
			assert.Contains(t, info.String(), "Build version: "+tt.wantVersion)
		})
	}
}

func TestNewPackageListResponse_NeverNil(t *testing.T) {
	assert.NotNil(t, NewPackageListResponse(nil).Packages)

	packages := []Package{{PackageID: "a"}}
	assert.Equal(t, packages, NewPackageListResponse(packages).Packages)
}
