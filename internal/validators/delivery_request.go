// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-parcel-tracker/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldDestination targets the destination of a delivery request.
	FieldDestination = "destination"

	// FieldSpeed targets the speed class of a delivery request.
	FieldSpeed = "speed"

	// FieldPackageID targets a package identifier passed as a path value.
	FieldPackageID = "package_id"
)

// PackageValidator checks the structural shape of package requests. It
// only verifies presence: empty strings are valid destinations and speeds.
type PackageValidator struct{}

func NewPackageValidator() Validator {
	return &PackageValidator{}
}

func (v *PackageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DeliveryRequest:
		return v.validateDeliveryRequest(ctx, value, fields...)
	case *models.DeliveryRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDeliveryRequest(ctx, *value, fields...)

	case string:
		return v.validatePackageID(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PackageValidator) validateDeliveryRequest(ctx context.Context, request models.DeliveryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDestination, FieldSpeed}
	}

	for _, f := range fields {
		switch f {
		case FieldDestination:
			if request.Destination == nil {
				return ErrMissingDestination
			}
		case FieldSpeed:
			if request.Speed == nil {
				return ErrMissingSpeed
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePackageID rejects only the empty id; any other string is looked
// up as-is and may simply not be found.
func (v *PackageValidator) validatePackageID(ctx context.Context, id string, fields ...string) error {
	for _, f := range fields {
		if f != FieldPackageID {
			return ErrUnknownField
		}
	}

	if id == "" {
		return ErrMissingPackageID
	}

	return nil
}
