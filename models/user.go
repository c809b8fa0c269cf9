// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Role names known to the storefront. RoleCustomer is granted at
// registration; RoleAdmin is assigned out of band.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents a storefront account as stored in the "users" table
// together with the names of the roles assigned to it.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the database-assigned identifier of the user.
	ID int64 `json:"id"`

	// FirstName and LastName are the display name parts.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Email is unique and always stored lower-cased.
	Email string `json:"email"`

	// PasswordHash is the salted PBKDF2 digest in "salt:key" hex form.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// IsActive is false for disabled accounts; such accounts cannot log in.
	IsActive bool `json:"-"`

	// EmailVerified reports whether the email address was confirmed.
	EmailVerified bool `json:"emailVerified"`

	// Roles holds the role names from "user_roles". Empty until loaded.
	Roles []string `json:"roles"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasRole reports whether role is among the user's roles.
func (u User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// Summary returns the role-augmented view of the user that is handed to
// clients after login and cached in their session.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Roles:     nonNilRoles(u.Roles),
	}
}

// UserSummary is the public identity of a signed-in user. It is returned by
// the login endpoint, cached by clients next to the session token and
// consulted by the route access policy.
type UserSummary struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}

// HasRole reports whether role is among the summary's roles.
func (s UserSummary) HasRole(role string) bool {
	return slices.Contains(s.Roles, role)
}

// UserUpdate describes a partial update of a user record.
// Only non-nil fields are written.
type UserUpdate struct {
	// ID identifies the record to update. Required.
	ID int64

	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update carries no field to write.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.PasswordHash == nil
}

func nonNilRoles(roles []string) []string {
	if roles == nil {
		return []string{}
	}
	return roles
}
