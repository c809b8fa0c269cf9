// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the storefront auth
// API.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP/JSON implementation ([NewHTTPServerAdapter]) built on
// resty. Non-2xx responses are turned into an [*APIError] that unwraps to one
// of the status sentinels in errors.go, so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the auth API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// An empty token removes it.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Register calls POST /api/auth/register.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login calls POST /api/auth/login. The returned token is not stored;
	// the caller decides whether to keep it.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// GetProfile calls GET /api/auth/profile with the stored token.
	GetProfile(ctx context.Context) (models.ProfileResponse, error)

	// UpdateProfile calls PUT /api/auth/profile with the stored token.
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.UpdateProfileResponse, error)

	// Version calls GET /api/version.
	Version(ctx context.Context) (string, error)
}
