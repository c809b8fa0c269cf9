// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "Ann@Example.com",
		Password:  "Secret123",
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	req := validRegisterRequest()
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))

	login := models.LoginRequest{Email: "a@b.co", Password: "x"}
	assert.NoError(t, v.Validate(ctx, login))
	assert.NoError(t, v.Validate(ctx, &login))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestValidate_RegisterRequest
// ---------------------------------------------------------------------------

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{"valid", func(r *models.RegisterRequest) {}, nil},
		{"missing first name", func(r *models.RegisterRequest) { r.FirstName = "" }, ErrMissingFields},
		{"missing last name", func(r *models.RegisterRequest) { r.LastName = "" }, ErrMissingFields},
		{"missing email", func(r *models.RegisterRequest) { r.Email = "" }, ErrMissingFields},
		{"missing password", func(r *models.RegisterRequest) { r.Password = "" }, ErrMissingFields},
		{"missing beats invalid", func(r *models.RegisterRequest) { r.FirstName = ""; r.Email = "bad" }, ErrMissingFields},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "ann.example.com" }, ErrInvalidEmail},
		{"weak password", func(r *models.RegisterRequest) { r.Password = "secret123" }, ErrWeakPassword},
		{"email before password", func(r *models.RegisterRequest) { r.Email = "x"; r.Password = "x" }, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_RegisterRequest_UnknownField(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), validRegisterRequest(), "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_LoginRequest
// ---------------------------------------------------------------------------

func TestValidate_LoginRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "x"}), ErrMissingCredentials)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.co"}), ErrMissingCredentials)
	// shape is not checked at login
	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "not-an-email", Password: "x"}))
}

// ---------------------------------------------------------------------------
// TestValidateEmail / TestValidatePassword
// ---------------------------------------------------------------------------

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "ann.lee+shop@example.co.uk", "ANN@EXAMPLE.COM"}
	invalid := []string{"", "ann", "ann@", "@example.com", "ann@example", "ann lee@example.com", "ann@exa mple.com", "a@@b.co"}

	for _, e := range valid {
		assert.NoError(t, ValidateEmail(e), e)
	}
	for _, e := range invalid {
		assert.ErrorIs(t, ValidateEmail(e), ErrInvalidEmail, e)
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Secret12", true},
		{"aB3aB3aB3", true},
		{"Secre12", false},
		{"secret123", false},
		{"SECRET123", false},
		{"SecretPass", false},
		{"ÄÖÜäöü12", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}
