// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the auth API writes into
// response bodies. Clients display them as they are.
package app

// Request and transport level messages.
const (
	// MsgInvalidBody is returned when the request body is not valid JSON.
	MsgInvalidBody = "Invalid request body"

	MsgMethodNotAllowed = "Method not allowed"
	MsgNotFound         = "Not found"

	// MsgUnauthorized is returned when the Authorization header is missing
	// or does not carry a bearer token.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidToken is returned when a bearer token fails verification.
	MsgInvalidToken = "Invalid or expired token"
)

// Success messages.
const (
	MsgRegistered     = "User registered successfully"
	MsgLoggedIn       = "Login successful"
	MsgProfileUpdated = "Profile updated successfully"
)

// Validation and business rule messages.
const (
	MsgMissingFields           = "All fields are required"
	MsgMissingCredentials      = "Email and password are required"
	MsgInvalidEmail            = "Invalid email format"
	MsgWeakPassword            = "Password must have at least 8 characters, 1 lowercase, 1 uppercase and 1 numeric character"
	MsgEmailRegistered         = "Email already registered"
	MsgEmailInUse              = "Email already in use"
	MsgInvalidCredentials      = "Invalid email or password"
	MsgAccountInactive         = "Account is inactive"
	MsgUserNotFound            = "User not found"
	MsgNothingToUpdate         = "No fields to update"
	MsgCurrentPasswordRequired = "Current password is required to change password"
	MsgWrongCurrentPassword    = "Current password is incorrect"
)

// Fallback messages of server-side failures. The cause is only logged.
const (
	MsgRegistrationFailed = "Registration failed"
	MsgLoginFailed        = "Login failed"
	MsgFetchProfileFailed = "Failed to fetch profile"
	MsgUpdateFailed       = "Failed to update profile"
)
