// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/access"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// ClientAuthService is the client side of authentication. It talks to the
// server through the adapter and keeps the session in the SessionStore.
type ClientAuthService interface {
	// Register creates an account. It does not sign the user in.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisteredUser, error)

	// Login signs in and persists the token together with the user.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout clears the stored session.
	Logout(ctx context.Context) error

	// RestoreSession loads the stored session and arms the adapter with its
	// token. A half-written or expired session is cleared and the zero
	// session returned.
	RestoreSession(ctx context.Context) (models.Session, error)

	// FetchProfile loads the signed-in user's profile and refreshes the
	// cached user. A rejected token clears the session.
	FetchProfile(ctx context.Context) (models.Profile, error)

	// UpdateProfile changes the signed-in user's profile and refreshes the
	// cached user. A rejected token clears the session.
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.UpdatedProfile, error)
}

// ClientNavigationService is the client entry point of the route access
// policy.
type ClientNavigationService interface {
	// State returns the current session state. It is Pending until the
	// first Refresh completes.
	State() access.SessionState

	// Refresh reads the stored session and resolves the state.
	Refresh(ctx context.Context) (access.SessionState, error)

	// Navigate evaluates path against the current state. navigate is false
	// when the decision repeats a redirect already issued.
	Navigate(path string) (decision access.Decision, navigate bool)
}
