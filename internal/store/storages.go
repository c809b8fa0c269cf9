// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies the migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close closes the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
