// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of a session token.
//
// Timestamps are epoch milliseconds. The jwt.Claims accessors report no
// registered claims, so the jwt library applies no seconds-based time
// validation of its own; expiry is checked by the codec against ExpiresAt.
type SessionClaims struct {
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// ExpiresAtTime returns ExpiresAt as a time.Time.
func (c SessionClaims) ExpiresAtTime() time.Time {
	return time.UnixMilli(c.ExpiresAt)
}

// IssuedAtTime returns IssuedAt as a time.Time.
func (c SessionClaims) IssuedAtTime() time.Time {
	return time.UnixMilli(c.IssuedAt)
}

// GetExpirationTime implements jwt.Claims.
func (c SessionClaims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuedAt implements jwt.Claims.
func (c SessionClaims) GetIssuedAt() (*jwt.NumericDate, error) { return nil, nil }

// GetNotBefore implements jwt.Claims.
func (c SessionClaims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuer implements jwt.Claims.
func (c SessionClaims) GetIssuer() (string, error) { return "", nil }

// GetSubject implements jwt.Claims.
func (c SessionClaims) GetSubject() (string, error) { return "", nil }

// GetAudience implements jwt.Claims.
func (c SessionClaims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// Token is an issued session token together with its decoded claims.
type Token struct {
	// SignedString is the compact header.payload.signature form handed to
	// clients.
	SignedString string `json:"-"`

	SessionClaims
}

// String returns the compact serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
