// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations: goose's first statement fails
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}

	assert.ErrorIs(t, MigrateClient(nil), errNilDB)
}

func TestEmbeddedMigrations(t *testing.T) {
	server, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	assert.Len(t, server, 2)

	client, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)
	assert.Len(t, client, 1)
}

// TestMigrateClient_SQLite runs the client migrations against a real SQLite
// file and checks they are idempotent.
func TestMigrateClient_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", t.TempDir()+"/session.db")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateClient(db))
	require.NoError(t, MigrateClient(db))

	_, err = db.Exec(`INSERT INTO session (key, value) VALUES ('authToken', 't')`)
	assert.NoError(t, err)
}
