// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

var bucketSession = []byte("session")

const boltOpenTimeout = time.Second

// boltSessionStore keeps the session in one bbolt bucket. Save and Clear
// touch both keys inside a single update transaction.
type boltSessionStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltSessionStore opens (or creates) the bbolt file at path.
func NewBoltSessionStore(path string, log *logger.Logger) (SessionStore, error) {
	if err := createLocalDBFileDir(path); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		log.Err(err).Str("func", "NewBoltSessionStore").Msg("error opening boltdb")
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create session bucket: %w", err)
	}

	return &boltSessionStore{db: db, logger: log}, nil
}

func (s *boltSessionStore) Load(_ context.Context) (models.Session, error) {
	var token string
	var user []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSession)
		token = string(b.Get([]byte(SessionTokenKey)))
		// values are only valid for the life of the transaction
		user = bytes.Clone(b.Get([]byte(SessionUserKey)))
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*boltSessionStore.Load").Msg("error reading session")
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	return decodeSession(token, user), nil
}

func (s *boltSessionStore) Save(_ context.Context, session models.Session) error {
	user, err := encodeSessionUser(session)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Put([]byte(SessionTokenKey), []byte(session.Token)); err != nil {
			return err
		}
		return b.Put([]byte(SessionUserKey), user)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*boltSessionStore.Save").Msg("error writing session")
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *boltSessionStore) Clear(_ context.Context) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Delete([]byte(SessionTokenKey)); err != nil {
			return err
		}
		return b.Delete([]byte(SessionUserKey))
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*boltSessionStore.Clear").Msg("error clearing session")
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *boltSessionStore) Close() error {
	return s.db.Close()
}
