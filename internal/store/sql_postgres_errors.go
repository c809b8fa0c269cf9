// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation should be
// retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a lost connection or a
	// deadlock rollback.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// by inspecting the SQLSTATE of a *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not PostgreSQL
// errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable: class 08 connection exceptions, class 40 transaction rollback
// (serialization failure, deadlock) and 57P03 cannot_connect_now.
// Everything else is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
