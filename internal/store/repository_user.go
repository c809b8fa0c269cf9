// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// Every method runs under the DB query timeout and logs through the
// request-scoped logger from [logger.FromContext].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user row, looks up role and links both inside one
// transaction. A unique violation on email yields [ErrEmailAlreadyExists];
// an unknown role yields [ErrRoleNotFound] and nothing is stored.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, role string) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	insertQuery, insertArgs, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	created, err := scanUser(tx.QueryRowContext(ctx, insertQuery, insertArgs...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	roleID, err := selectRoleID(ctx, tx, role)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("role", role).Msg("error resolving role")
		return models.User{}, err
	}

	assignQuery, assignArgs, err := buildAssignRoleQuery(created.ID, roleID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, assignQuery, assignArgs...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error assigning role")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	created.Roles = []string{role}
	return created, nil
}

// FindUserByEmail returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

// FindUserByID returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := buildSelectUserQuery(where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		found, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetUserRoles returns the user's role names in alphabetical order. A user
// without roles yields an empty, non-nil slice.
func (r *userRepository) GetUserRoles(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := buildSelectUserRolesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var roles []string
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		roles = []string{}

		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if scanErr := rows.Scan(&name); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			roles = append(roles, name)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserRoles").Int64("user_id", userID).Msg("error selecting roles")
		return nil, err
	}

	return roles, nil
}

// EmailTakenByOther reports whether a user other than excludeID owns email.
func (r *userRepository) EmailTakenByOther(ctx context.Context, email string, excludeID int64) (bool, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := buildEmailTakenQuery(email, excludeID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var taken bool
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var one int
		scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&one)
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			taken = false
			return nil
		case scanErr != nil:
			return scanErr
		}
		taken = true
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.EmailTakenByOther").Msg("error checking email")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return taken, nil
}

// UpdateUser writes the non-nil fields of update. It returns
// [ErrNothingToUpdate] for an empty update, [ErrUserNotFound] when the row
// is gone and [ErrEmailAlreadyExists] on an email collision.
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := buildUpdateUserQuery(update)
	if errors.Is(err, ErrNothingToUpdate) {
		return models.User{}, err
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", update.ID).Msg("error updating user")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// AssignRole links role to the user. It returns [ErrRoleNotFound] for an
// unknown role; an existing assignment is left as is.
func (r *userRepository) AssignRole(ctx context.Context, userID int64, role string) error {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	roleID, err := selectRoleID(ctx, r.db, role)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AssignRole").Str("role", role).Msg("error resolving role")
		return err
	}

	query, args, err := buildAssignRoleQuery(userID, roleID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.AssignRole").Int64("user_id", userID).Msg("error assigning role")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// queryRower is implemented by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func selectRoleID(ctx context.Context, q queryRower, role string) (int64, error) {
	query, args, err := buildSelectRoleIDQuery(role)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var roleID int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&roleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrRoleNotFound
		}
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return roleID, nil
}
