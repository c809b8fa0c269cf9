// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// sessionTable is the key/value table created by the client migrations.
const sessionTable = "session"

// sqliteSessionStore keeps the session as two rows of the SQLite session
// table, keyed [SessionTokenKey] and [SessionUserKey].
type sqliteSessionStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteSessionStore opens the SQLite file at path, applies the client
// migrations and returns a [SessionStore] over it.
func NewSQLiteSessionStore(ctx context.Context, path string, log *logger.Logger) (SessionStore, error) {
	db, err := NewConnectSQLite(ctx, path, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &sqliteSessionStore{db: db, logger: log}, nil
}

func (s *sqliteSessionStore) Load(ctx context.Context) (models.Session, error) {
	query, args, err := sq.Select("key", "value").
		From(sessionTable).
		Where(sq.Eq{"key": []string{SessionTokenKey, SessionUserKey}}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.Load").Msg("error selecting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, 2)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return decodeSession(values[SessionTokenKey], []byte(values[SessionUserKey])), nil
}

func (s *sqliteSessionStore) Save(ctx context.Context, session models.Session) error {
	user, err := encodeSessionUser(session)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert(sessionTable).
		Columns("key", "value").
		Values(SessionTokenKey, session.Token).
		Values(SessionUserKey, string(user)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.inTx(ctx, "*sqliteSessionStore.Save", query, args)
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	query, args, err := sq.Delete(sessionTable).
		Where(sq.Eq{"key": []string{SessionTokenKey, SessionUserKey}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.inTx(ctx, "*sqliteSessionStore.Clear", query, args)
}

func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}

// inTx runs one statement touching both session rows in a transaction.
func (s *sqliteSessionStore) inTx(ctx context.Context, funcName, query string, args []any) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
