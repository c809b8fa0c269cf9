// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of user-supplied input before it
// reaches business logic.
//
// Validators know nothing about storage: rules that need the database,
// such as email uniqueness, live in the service layer.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
