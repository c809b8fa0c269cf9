// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/migrations"
)

const (
	defaultQueryTimeout = 5 * time.Second

	// maxReadAttempts bounds how often a read is tried when it fails with a
	// retryable error.
	maxReadAttempts = 3
	retryBackoff    = 50 * time.Millisecond
)

// ErrorClassificator decides whether a failed database operation is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps *sql.DB with the error classification and per-call timeout used
// by the repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	queryTimeout       time.Duration
}

// Migrate applies the server schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateClient applies the client session schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// withTimeout derives the per-call context of one repository method.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := db.queryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// withRetry runs a read-only op again while it fails with an error the
// classificator marks as Retryable. Writes are never retried.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxReadAttempts; attempt++ {
		if err = op(ctx); err == nil || db.errorClassificator == nil ||
			db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
