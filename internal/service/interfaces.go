// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/access"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// AuthService registers users, checks their credentials and verifies the
// session tokens it issues.
type AuthService interface {
	// RegisterUser validates req, stores a new customer account and returns
	// it. The password digest is never returned to transports.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login checks the credentials and issues a session token. The returned
	// user carries its roles.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)

	// ParseToken verifies tokenString and returns its claims. Every failure
	// is reported as utils.ErrInvalidToken wrapped in ErrUnauthorized.
	ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error)
}

// ProfileService reads and changes the account of an authenticated user.
type ProfileService interface {
	// GetProfile returns the user with its roles.
	GetProfile(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies the non-empty fields of req and returns the
	// updated user with its roles.
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error)

	// GrantRole assigns role to the user owning email.
	GrantRole(ctx context.Context, email, role string) error
}

// PageAccessService is the server-render entry point of the route access
// policy.
type PageAccessService interface {
	// ResolveSession turns a raw session token into the policy's session
	// state. An empty, invalid or orphaned token resolves to signed out.
	ResolveSession(ctx context.Context, tokenString string) access.SessionState

	// NeedsSession reports whether the decision for path depends on who is
	// signed in. Callers may skip ResolveSession when it does not.
	NeedsSession(path string) bool

	// Decide evaluates the policy for path and state.
	Decide(path string, state access.SessionState) access.Decision
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
