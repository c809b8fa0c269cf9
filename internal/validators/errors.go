// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingFields is returned when a registration field is empty.
	ErrMissingFields = errors.New("all fields are required")
	// ErrMissingCredentials is returned when a login lacks email or password.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidEmail is returned for an address that is not local@domain.tld.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrWeakPassword is returned for a password under the strength policy.
	ErrWeakPassword = errors.New("password must have at least 8 characters, 1 lowercase, 1 uppercase and 1 numeric character")
)
