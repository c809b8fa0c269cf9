// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Error categories. Every error a service returns to its caller wraps at
// most one of them; transports map the category to a status code.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Specific failures, each wrapping its category.
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrAccountInactive    = fmt.Errorf("%w: account is inactive", ErrForbidden)

	// ErrEmailRegistered is returned by registration for a taken email.
	ErrEmailRegistered = fmt.Errorf("%w: email already registered", ErrConflict)
	// ErrEmailInUse is returned by a profile update for an email owned by
	// another user.
	ErrEmailInUse = fmt.Errorf("%w: email already in use", ErrConflict)

	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrNothingToUpdate = fmt.Errorf("%w: no fields to update", ErrValidation)

	ErrCurrentPasswordRequired = fmt.Errorf("%w: current password is required to change password", ErrValidation)
	ErrWrongCurrentPassword    = fmt.Errorf("%w: current password is incorrect", ErrUnauthorized)

	// ErrNotAuthenticated is returned by client calls that need a session
	// when none is stored.
	ErrNotAuthenticated = fmt.Errorf("%w: not signed in", ErrUnauthorized)
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// FieldError ties a failure to the request field that caused it. It unwraps
// to the underlying error, so errors.Is still sees the category.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

// validationError marks err, typically from the validators package, as a
// validation failure while keeping it matchable.
func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
