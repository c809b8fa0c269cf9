// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest is the body of PUT /api/auth/profile.
// Empty fields are treated as not supplied.
type ProfileUpdateRequest struct {
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	Email           string `json:"email,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// RegisteredUser is the user view returned after registration.
type RegisteredUser struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is the user view returned by GET /api/auth/profile.
type Profile struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Roles         []string  `json:"roles"`
}

// UpdatedProfile is the user view returned by PUT /api/auth/profile.
type UpdatedProfile struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updatedAt"`
	Roles     []string  `json:"roles"`
}

// RegisterResponse is the 201 body of POST /api/auth/register.
type RegisterResponse struct {
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// LoginResponse is the 200 body of POST /api/auth/login.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// ProfileResponse is the 200 body of GET /api/auth/profile.
type ProfileResponse struct {
	User Profile `json:"user"`
}

// UpdateProfileResponse is the 200 body of PUT /api/auth/profile.
type UpdateProfileResponse struct {
	Message string         `json:"message"`
	User    UpdatedProfile `json:"user"`
}

// ErrorResponse is the body of every failed API call. Key names the
// offending request field for field-scoped validation errors.
type ErrorResponse struct {
	Key   string `json:"key,omitempty"`
	Error string `json:"error"`
}

// NewRegisteredUser builds the registration view of u.
func NewRegisteredUser(u User) RegisteredUser {
	return RegisteredUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// NewProfile builds the profile view of u.
func NewProfile(u User) Profile {
	return Profile{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		Roles:         nonNilRoles(u.Roles),
	}
}

// NewUpdatedProfile builds the post-update view of u.
func NewUpdatedProfile(u User) UpdatedProfile {
	return UpdatedProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		UpdatedAt: u.UpdatedAt,
		Roles:     nonNilRoles(u.Roles),
	}
}

// Summary converts a profile into the summary cached in a client session.
func (p Profile) Summary() UserSummary {
	return UserSummary{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, Email: p.Email, Roles: nonNilRoles(p.Roles)}
}

// Summary converts an updated profile into the summary cached in a client
// session.
func (p UpdatedProfile) Summary() UserSummary {
	return UserSummary{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, Email: p.Email, Roles: nonNilRoles(p.Roles)}
}
