// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/service"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/utils"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/validators"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

const profileURL = "/api/auth/profile"

func expectValidToken(m *testMocks) {
	m.auth.EXPECT().ParseToken(gomock.Any(), "good-token").Return(models.SessionClaims{UserID: 7, Email: "ann@example.com"}, nil)
}

// ── auth middleware ──────────────────────────────────────────────────────────

func TestProfile_MissingToken(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{})
	router := h.Init()

	for name, headers := range map[string]map[string]string{
		"no header":    nil,
		"basic scheme": {"Authorization": "Basic YW5uOnB3"},
		"empty bearer": {"Authorization": "Bearer "},
	} {
		t.Run(name, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodGet, profileURL, nil, headers)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Unauthorized", decodeError(t, rr).Error)
		})
	}
}

func TestProfile_InvalidToken(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.auth.EXPECT().ParseToken(gomock.Any(), "stale").
		Return(models.SessionClaims{}, fmt.Errorf("%w: %w", service.ErrUnauthorized, utils.ErrInvalidToken))

	rr := doRequest(t, h.Init(), http.MethodGet, profileURL, nil, bearer("stale"))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid or expired token", decodeError(t, rr).Error)
}

// ── GET ──────────────────────────────────────────────────────────────────────

func TestGetProfile_Success(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	expectValidToken(m)
	m.profile.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(models.User{
		ID:            7,
		FirstName:     "Ann",
		LastName:      "Lee",
		Email:         "ann@example.com",
		PasswordHash:  "salt:key",
		EmailVerified: true,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		Roles:         []string{models.RoleCustomer},
	}, nil)

	rr := doRequest(t, h.Init(), http.MethodGet, profileURL, nil, bearer("good-token"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "salt:key")

	var body models.ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.User.ID)
	assert.True(t, body.User.EmailVerified)
	assert.Equal(t, []string{models.RoleCustomer}, body.User.Roles)
}

func TestGetProfile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"user gone", service.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"database down", errors.New("timeout"), http.StatusInternalServerError, "Failed to fetch profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, config.Server{})
			expectValidToken(m)
			m.profile.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(models.User{}, tt.err)

			rr := doRequest(t, h.Init(), http.MethodGet, profileURL, nil, bearer("good-token"))
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rr).Error)
		})
	}
}

// ── PUT ──────────────────────────────────────────────────────────────────────

func TestUpdateProfile_Success(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	expectValidToken(m)

	req := models.ProfileUpdateRequest{FirstName: "Anna"}
	m.profile.EXPECT().UpdateProfile(gomock.Any(), int64(7), req).Return(models.User{
		ID:        7,
		FirstName: "Anna",
		LastName:  "Lee",
		Email:     "ann@example.com",
		UpdatedAt: createdAt,
		Roles:     []string{models.RoleCustomer},
	}, nil)

	rr := doRequest(t, h.Init(), http.MethodPut, profileURL, req, bearer("good-token"))
	require.Equal(t, http.StatusOK, rr.Code)

	var body models.UpdateProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Profile updated successfully", body.Message)
	assert.Equal(t, "Anna", body.User.FirstName)
}

func TestUpdateProfile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKey    string
		wantError  string
	}{
		{
			name:       "invalid email",
			err:        &service.FieldError{Field: validators.FieldEmail, Err: fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidEmail)},
			wantStatus: http.StatusBadRequest,
			wantKey:    "email",
			wantError:  "Invalid email format",
		},
		{
			name:       "email in use",
			err:        &service.FieldError{Field: validators.FieldEmail, Err: service.ErrEmailInUse},
			wantStatus: http.StatusConflict,
			wantKey:    "email",
			wantError:  "Email already in use",
		},
		{
			name:       "current password missing",
			err:        &service.FieldError{Field: validators.FieldCurrentPassword, Err: service.ErrCurrentPasswordRequired},
			wantStatus: http.StatusBadRequest,
			wantKey:    "currentPassword",
			wantError:  "Current password is required to change password",
		},
		{
			name:       "current password wrong",
			err:        &service.FieldError{Field: validators.FieldCurrentPassword, Err: service.ErrWrongCurrentPassword},
			wantStatus: http.StatusUnauthorized,
			wantKey:    "currentPassword",
			wantError:  "Current password is incorrect",
		},
		{
			name:       "weak new password",
			err:        &service.FieldError{Field: validators.FieldPassword, Err: fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrWeakPassword)},
			wantStatus: http.StatusBadRequest,
			wantKey:    "password",
			wantError:  "Password must have at least 8 characters, 1 lowercase, 1 uppercase and 1 numeric character",
		},
		{
			name:       "nothing to update",
			err:        service.ErrNothingToUpdate,
			wantStatus: http.StatusBadRequest,
			wantError:  "No fields to update",
		},
		{
			name:       "user gone",
			err:        service.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "User not found",
		},
		{
			name:       "database down",
			err:        errors.New("deadlock"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to update profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, config.Server{})
			expectValidToken(m)
			m.profile.EXPECT().UpdateProfile(gomock.Any(), int64(7), gomock.Any()).Return(models.User{}, tt.err)

			rr := doRequest(t, h.Init(), http.MethodPut, profileURL, models.ProfileUpdateRequest{}, bearer("good-token"))
			assert.Equal(t, tt.wantStatus, rr.Code)

			body := decodeError(t, rr)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantKey, body.Key)
		})
	}
}

func TestUpdateProfile_InvalidJSON(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	expectValidToken(m)

	rr := doRequest(t, h.Init(), http.MethodPut, profileURL, "[", bearer("good-token"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, rr).Error)
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrValidation, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrAccountInactive, http.StatusForbidden},
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrEmailRegistered, http.StatusConflict},
		{&service.FieldError{Field: "email", Err: service.ErrEmailInUse}, http.StatusConflict},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
