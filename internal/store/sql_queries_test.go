// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

func Test_buildUpdateUserQuery_OnlySuppliedColumns(t *testing.T) {
	email := "bob@example.com"
	hash := "salt:key"

	query, args, err := buildUpdateUserQuery(models.UserUpdate{ID: 3, Email: &email, PasswordHash: &hash})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "update users set"))
	assert.Contains(t, q, "email = $1")
	assert.Contains(t, q, "password_hash = $2")
	assert.Contains(t, q, "updated_at = current_timestamp")
	assert.Contains(t, q, "where id = $3")
	assert.Contains(t, q, "returning id, first_name")
	assert.NotContains(t, q, "first_name =")
	assert.NotContains(t, q, "last_name =")

	assert.Equal(t, []any{email, hash, int64(3)}, args)
}

func Test_buildUpdateUserQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateUserQuery(models.UserUpdate{ID: 3})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func Test_buildInsertUserQuery(t *testing.T) {
	query, args, err := buildInsertUserQuery(models.User{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO users (first_name,last_name,email,password_hash) VALUES ($1,$2,$3,$4)")
	assert.Contains(t, query, "RETURNING id, first_name, last_name, email, password_hash, is_active, email_verified, created_at, updated_at")
	assert.Equal(t, []any{"Ann", "Lee", "ann@example.com", "h"}, args)
}

func Test_buildEmailTakenQuery_ExcludesSelf(t *testing.T) {
	query, args, err := buildEmailTakenQuery("ann@example.com", 7)
	require.NoError(t, err)

	assert.Contains(t, query, "email = $1")
	assert.Contains(t, query, "id <> $2")
	assert.Contains(t, query, "LIMIT 1")
	assert.Equal(t, []any{"ann@example.com", int64(7)}, args)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "serialization", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "wrapped deadlock", err: errors.Join(errors.New("ctx"), pgError(pgerrcode.DeadlockDetected)), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
