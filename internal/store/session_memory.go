// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// memorySessionStore keeps the session for the life of the process.
type memorySessionStore struct {
	mu      sync.RWMutex
	session models.Session
}

// NewMemorySessionStore returns an empty in-process [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{}
}

func (s *memorySessionStore) Load(_ context.Context) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := s.session
	session.User.Roles = slices.Clone(session.User.Roles)
	return session, nil
}

func (s *memorySessionStore) Save(_ context.Context, session models.Session) error {
	if !session.IsAuthenticated() {
		return ErrIncompleteSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session.User.Roles = slices.Clone(session.User.Roles)
	s.session = session
	return nil
}

func (s *memorySessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.Session{}
	return nil
}

func (s *memorySessionStore) Close() error {
	return nil
}
