// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/adapter"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/store"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/utils"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

type clientAuthService struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter

	now func() time.Time

	logger *logger.Logger
}

// NewClientAuthService constructs the client auth flows over sessions and
// serverAdapter.
func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisteredUser, error) {
	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Register").Msg("registration failed")
		return models.RegisteredUser{}, mapAdapterError(err)
	}

	return resp.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("login failed")
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{Token: resp.Token, User: resp.User}
	if err = a.sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("saving session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// RestoreSession reads the token expiry without verifying the signature;
// the server remains the only judge of validity.
func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.Load(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("loading session: %w", err)
	}

	if !session.IsAuthenticated() {
		a.adapter.SetToken("")
		return models.Session{}, nil
	}

	expiresAt, err := utils.PeekSessionExpiry(session.Token)
	if err != nil || expiresAt.Before(a.now()) {
		a.logger.Info().Str("func", "*clientAuthService.RestoreSession").Msg("dropping stale session")
		return models.Session{}, a.Logout(ctx)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) FetchProfile(ctx context.Context) (models.Profile, error) {
	session, err := a.requireSession(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	resp, err := a.adapter.GetProfile(ctx)
	if err != nil {
		return models.Profile{}, a.handleAuthorizedError(ctx, err)
	}

	session.User = resp.User.Summary()
	if err = a.sessions.Save(ctx, session); err != nil {
		return models.Profile{}, fmt.Errorf("saving session: %w", err)
	}

	return resp.User, nil
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.UpdatedProfile, error) {
	session, err := a.requireSession(ctx)
	if err != nil {
		return models.UpdatedProfile{}, err
	}

	resp, err := a.adapter.UpdateProfile(ctx, req)
	if err != nil {
		return models.UpdatedProfile{}, a.handleAuthorizedError(ctx, err)
	}

	session.User = resp.User.Summary()
	if err = a.sessions.Save(ctx, session); err != nil {
		return models.UpdatedProfile{}, fmt.Errorf("saving session: %w", err)
	}

	return resp.User, nil
}

func (a *clientAuthService) requireSession(ctx context.Context) (models.Session, error) {
	session, err := a.RestoreSession(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if !session.IsAuthenticated() {
		return models.Session{}, ErrNotAuthenticated
	}
	return session, nil
}

// handleAuthorizedError clears the session when the server rejected the
// token itself. A field-scoped 401, such as a wrong current password, keeps
// the session.
func (a *clientAuthService) handleAuthorizedError(ctx context.Context, err error) error {
	mapped := mapAdapterError(err)

	var fieldErr *FieldError
	if errors.Is(err, adapter.ErrUnauthorized) && !errors.As(mapped, &fieldErr) {
		if clearErr := a.Logout(ctx); clearErr != nil {
			a.logger.Err(clearErr).Msg("clearing rejected session failed")
		}
	}

	return mapped
}
