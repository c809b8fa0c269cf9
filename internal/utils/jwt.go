// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// SessionTokenLifetime is how long an issued session token stays valid.
// Tokens are never refreshed; expiry forces a new login.
const SessionTokenLifetime = 7 * 24 * time.Hour

var (
	// ErrInvalidToken is returned for every token that fails verification:
	// malformed structure, wrong algorithm, bad signature, undecodable
	// payload or expiry. Callers are not told which check failed.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrEmptySignKey is returned when a token is issued or verified
	// without a signing secret.
	ErrEmptySignKey = errors.New("empty token sign key")

	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when
	// the header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

var sessionTokenParser = jwt.NewParser(
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	jwt.WithoutClaimsValidation(),
	jwt.WithStrictDecoding(),
)

// IssueSessionToken creates a signed HS256 session token for the user.
//
// The header is {"alg":"HS256","typ":"JWT"} and the payload carries userId,
// email, iat and exp, the timestamps in epoch milliseconds. exp is
// now + [SessionTokenLifetime].
//
// Example usage:
//
//	token, err := utils.IssueSessionToken(42, "ann@example.com", signKey, time.Now())
func IssueSessionToken(userID int64, email, signKey string, now time.Time) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, ErrEmptySignKey
	}

	claims := models.SessionClaims{
		UserID:    userID,
		Email:     email,
		IssuedAt:  now.UnixMilli(),
		ExpiresAt: now.Add(SessionTokenLifetime).UnixMilli(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing session token: %w", err)
	}

	return models.Token{SignedString: signed, SessionClaims: claims}, nil
}

// VerifySessionToken checks the signature of tokenString with signKey and
// returns its claims.
//
// The token must have exactly three segments, declare HS256 and use strict
// unpadded base64url encoding. The signature is compared in constant time
// by the jwt library. A token whose exp lies before now is rejected even
// when its signature is valid. Every such failure is [ErrInvalidToken].
func VerifySessionToken(tokenString, signKey string, now time.Time) (models.SessionClaims, error) {
	if signKey == "" {
		return models.SessionClaims{}, ErrEmptySignKey
	}

	var claims models.SessionClaims
	_, err := sessionTokenParser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	})
	if err != nil {
		return models.SessionClaims{}, ErrInvalidToken
	}

	if claims.ExpiresAt < now.UnixMilli() {
		return models.SessionClaims{}, ErrInvalidToken
	}

	return claims, nil
}

// PeekSessionExpiry reads exp from tokenString without checking the
// signature. Clients use it to drop stale stored sessions; it must never be
// used to authorize anything.
func PeekSessionExpiry(tokenString string) (time.Time, error) {
	var claims models.SessionClaims
	if _, _, err := sessionTokenParser.ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}, ErrInvalidToken
	}
	return claims.ExpiresAtTime(), nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
