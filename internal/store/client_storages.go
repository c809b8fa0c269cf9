// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
)

// Session store DSN forms accepted by [NewSessionStore].
const (
	SessionDSNMemory = "memory"
	sessionDSNSQLite = "sqlite://"
	sessionDSNBolt   = "bolt://"
)

// NewSessionStore opens the client [SessionStore] named by dsn:
//
//	sqlite://<path>  SQLite file, key/value session table
//	bolt://<path>    bbolt file, "session" bucket
//	memory           process memory, lost on exit
func NewSessionStore(ctx context.Context, dsn string, log *logger.Logger) (SessionStore, error) {
	log.Debug().Str("dsn", dsn).Msg("opening session store")

	if dsn == SessionDSNMemory {
		return NewMemorySessionStore(), nil
	}
	if path, ok := strings.CutPrefix(dsn, sessionDSNSQLite); ok && path != "" {
		return NewSQLiteSessionStore(ctx, path, log)
	}
	if path, ok := strings.CutPrefix(dsn, sessionDSNBolt); ok && path != "" {
		return NewBoltSessionStore(path, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedSessionDSN, dsn)
}
