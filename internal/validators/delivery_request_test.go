// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-parcel-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewPackageValidator(t *testing.T) {
	v := NewPackageValidator()
	require.NotNil(t, v)
}

func TestValidate_DeliveryRequest(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid value",
			obj:  models.DeliveryRequest{Destination: strPtr("Jupiter"), Speed: strPtr("warp")},
		},
		{
			name: "valid pointer",
			obj:  &models.DeliveryRequest{Destination: strPtr("Jupiter"), Speed: strPtr("warp")},
		},
		{
			name: "empty strings are accepted",
			obj:  models.DeliveryRequest{Destination: strPtr(""), Speed: strPtr("")},
		},
		{
			name:    "missing destination",
			obj:     models.DeliveryRequest{Speed: strPtr("warp")},
			wantErr: ErrMissingDestination,
		},
		{
			name:    "missing speed",
			obj:     models.DeliveryRequest{Destination: strPtr("Mars")},
			wantErr: ErrMissingSpeed,
		},
		{
			name:    "both missing reports destination first",
			obj:     models.DeliveryRequest{},
			wantErr: ErrMissingDestination,
		},
		{
			name:   "field scoping skips unchecked fields",
			obj:    models.DeliveryRequest{Speed: strPtr("warp")},
			fields: []string{FieldSpeed},
		},
		{
			name:    "unknown field",
			obj:     models.DeliveryRequest{Destination: strPtr("Mars"), Speed: strPtr("warp")},
			fields:  []string{"weight"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "nil pointer",
			obj:     (*models.DeliveryRequest)(nil),
			wantErr: ErrUnsupportedType,
		},
	}

	v := NewPackageValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PackageID(t *testing.T) {
	v := NewPackageValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, "AbCdEf1234"))
	assert.NoError(t, v.Validate(ctx, "not-ten-chars", FieldPackageID))
	assert.ErrorIs(t, v.Validate(ctx, ""), ErrMissingPackageID)
	assert.ErrorIs(t, v.Validate(ctx, "id", FieldSpeed), ErrUnknownField)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewPackageValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Package{}), ErrUnsupportedType)
}
