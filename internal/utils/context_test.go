// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

func TestContextKeyString(t *testing.T) {
	if SessionClaimsCtxKey.String() != "sessionClaims" {
		t.Errorf("expected 'sessionClaims', got '%s'", SessionClaimsCtxKey.String())
	}
}

func TestSessionClaimsFromContext_Success(t *testing.T) {
	claims := models.SessionClaims{UserID: 42, Email: "ann@example.com", IssuedAt: 1, ExpiresAt: 2}
	ctx := WithSessionClaims(context.Background(), claims)

	got, ok := SessionClaimsFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != claims {
		t.Errorf("expected %+v, got %+v", claims, got)
	}

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != 42 {
		t.Errorf("expected userID=42 ok=true, got %d ok=%v", userID, ok)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionClaimsCtxKey, int64(42))

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for wrong value type")
	}
}
