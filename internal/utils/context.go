// Package utils provides general-purpose helpers shared by the server and
// the client: typed context keys, JSON response writing, the session token
// codec, bearer header parsing, trace id generation and the HTTP client
// constructor.
package utils

import (
	"context"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionClaimsCtxKey is the key under which the auth middleware stores the
// verified claims of the request's session token.
var SessionClaimsCtxKey = contextKey("sessionClaims")

// WithSessionClaims returns a copy of ctx carrying claims.
func WithSessionClaims(ctx context.Context, claims models.SessionClaims) context.Context {
	return context.WithValue(ctx, SessionClaimsCtxKey, claims)
}

// SessionClaimsFromContext retrieves the claims stored by WithSessionClaims.
//
// ok is false when no claims are present or the value has an unexpected type.
func SessionClaimsFromContext(ctx context.Context) (models.SessionClaims, bool) {
	claims, ok := ctx.Value(SessionClaimsCtxKey).(models.SessionClaims)
	return claims, ok
}

// GetUserIDFromContext returns the user id of the verified session in ctx.
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing session
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	claims, ok := SessionClaimsFromContext(ctx)
	if !ok || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}
