// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE of a user
	// violates the unique constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user row matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrRoleNotFound is returned when a role name is not present in the
	// roles table.
	ErrRoleNotFound = errors.New("role was not found")

	// ErrNothingToUpdate is returned by UpdateUser when the update carries
	// no column to change.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrIncompleteSession is returned by SessionStore.Save for a session
	// that lacks the token or the user.
	ErrIncompleteSession = errors.New("session must carry both token and user")

	// ErrUnsupportedSessionDSN is returned by NewSessionStore for a DSN whose
	// scheme names no known backend.
	ErrUnsupportedSessionDSN = errors.New("unsupported session store dsn")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
