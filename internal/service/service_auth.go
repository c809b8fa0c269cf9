// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/crypto"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/store"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/utils"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/validators"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// dummyDigest is verified against when the email is unknown so that a
// failed login costs one key derivation either way.
var dummyDigest = strings.Repeat("0", 2*crypto.SaltLength) + ":" + strings.Repeat("0", 2*crypto.KeyLength)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify session
	// tokens.
	tokenSignKey string

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over userRepository. The
// returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		now:            time.Now,
		logger:         logger,
	}
}

// normalizeEmail is the stored form of an email address.
func normalizeEmail(email string) string {
	return strings.ToLower(email)
}

// RegisterUser creates a customer account.
//
// Required fields are checked first, then the email shape, then password
// strength. A taken email is ErrEmailRegistered whether the pre-check or
// the unique constraint catches it.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid registration request")
		return models.User{}, validationError(err)
	}

	email := normalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return models.User{}, ErrEmailRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("user lookup by email failed")
		return models.User{}, fmt.Errorf("user lookup by email failed: %w", err)
	}

	digest, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: digest,
	}, models.RoleCustomer)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailRegistered
		}
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates a user by email and password.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// The active flag is checked only after the password matched.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, validationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.hasher.Verify(req.Password, dummyDigest)
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Info().Int64("user_id", user.ID).Msg("inactive account tried to log in")
		return models.User{}, models.Token{}, ErrAccountInactive
	}

	user.Roles, err = a.userRepository.GetUserRoles(ctx, user.ID)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("loading roles failed")
		return models.User{}, models.Token{}, fmt.Errorf("loading roles failed: %w", err)
	}

	token, err := utils.IssueSessionToken(user.ID, user.Email, a.tokenSignKey, a.now())
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return user, token, nil
}

// ParseToken verifies a session token against the configured secret.
func (a *authService) ParseToken(_ context.Context, tokenString string) (models.SessionClaims, error) {
	claims, err := utils.VerifySessionToken(tokenString, a.tokenSignKey, a.now())
	if err != nil {
		return models.SessionClaims{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return claims, nil
}
