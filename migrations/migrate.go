// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds and applies the goose schema migrations: the
// PostgreSQL schema of the server and the SQLite schema of the client
// session store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	serverDir = "postgres"
	clientDir = "sqlite"
)

var errNilDB = errors.New("db is nil")

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies the server migrations to a PostgreSQL database opened
// with the pgx driver.
func Migrate(db *sql.DB) error {
	return migrate(db, goose.DialectPostgres, serverDir)
}

// MigrateClient applies the client session store migrations to a SQLite
// database.
func MigrateClient(db *sql.DB) error {
	return migrate(db, goose.DialectSQLite3, clientDir)
}

func migrate(db *sql.DB, dialect goose.Dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
