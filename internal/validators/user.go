// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// Request field names. They double as the "key" of field-scoped API errors.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldCurrentPassword = "currentPassword"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserValidator struct {
}

// NewUserValidator returns the [Validator] for registration and login
// requests.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest checks presence of every field first, then email
// shape, then password strength.
func (v *UserValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var value string
		switch f {
		case FieldFirstName:
			value = request.FirstName
		case FieldLastName:
			value = request.LastName
		case FieldEmail:
			value = request.Email
		case FieldPassword:
			value = request.Password
		default:
			return ErrUnknownField
		}
		if value == "" {
			return ErrMissingFields
		}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := ValidateEmail(request.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := ValidatePassword(request.Password); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *UserValidator) validateLoginRequest(_ context.Context, request models.LoginRequest) error {
	if request.Email == "" || request.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// ValidateEmail checks that email looks like local@domain.tld with no
// whitespace.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the strength policy: at least 8 characters with
// an ASCII lower-case letter, an ASCII upper-case letter and a digit.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrWeakPassword
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return ErrWeakPassword
	}

	return nil
}
