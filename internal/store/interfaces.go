// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// UserRepository is the server-side persistence of user accounts and their
// role assignments.
type UserRepository interface {
	// CreateUser inserts user and assigns it role in one transaction. It
	// returns the stored row with server-assigned fields filled in.
	CreateUser(ctx context.Context, user models.User, role string) (models.User, error)

	// FindUserByEmail returns the user with the given (already normalised)
	// email, or ErrUserNotFound. Roles are not loaded.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id, or ErrUserNotFound.
	// Roles are not loaded.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// GetUserRoles returns the role names assigned to the user, sorted.
	GetUserRoles(ctx context.Context, userID int64) ([]string, error)

	// EmailTakenByOther reports whether email belongs to a user other than
	// excludeID.
	EmailTakenByOther(ctx context.Context, email string, excludeID int64) (bool, error)

	// UpdateUser applies the non-nil fields of update, bumps updated_at and
	// returns the new row.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// AssignRole grants role to the user. Assigning a role twice is a no-op.
	AssignRole(ctx context.Context, userID int64, role string) error
}

// SessionStore is the client-side persistence of one authenticated session:
// the token and the cached user summary.
//
// Save and Clear write both values in one step, so Load never observes one
// without the other.
type SessionStore interface {
	// Load returns the stored session. A missing or half-written session is
	// returned as the zero models.Session and no error.
	Load(ctx context.Context) (models.Session, error)

	// Save replaces the stored session.
	Save(ctx context.Context, session models.Session) error

	// Clear removes the stored session.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
