// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/crypto"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/store"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/validators"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

type profileService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService over userRepository.
func NewProfileService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := p.findUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	return p.withRoles(ctx, user)
}

// UpdateProfile applies the supplied fields in request order: names, email,
// then password. The first failing field aborts the update and nothing is
// written.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	current, err := p.findUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	update := models.UserUpdate{ID: userID}

	if req.FirstName != "" {
		update.FirstName = &req.FirstName
	}
	if req.LastName != "" {
		update.LastName = &req.LastName
	}

	if req.Email != "" {
		if err = validators.ValidateEmail(req.Email); err != nil {
			return models.User{}, fieldError(validators.FieldEmail, validationError(err))
		}

		email := normalizeEmail(req.Email)
		taken, err := p.userRepository.EmailTakenByOther(ctx, email, userID)
		if err != nil {
			log.Err(err).Msg("email uniqueness check failed")
			return models.User{}, fmt.Errorf("email uniqueness check failed: %w", err)
		}
		if taken {
			return models.User{}, fieldError(validators.FieldEmail, ErrEmailInUse)
		}
		update.Email = &email
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			return models.User{}, fieldError(validators.FieldCurrentPassword, ErrCurrentPasswordRequired)
		}
		if !p.hasher.Verify(req.CurrentPassword, current.PasswordHash) {
			return models.User{}, fieldError(validators.FieldCurrentPassword, ErrWrongCurrentPassword)
		}
		if err = validators.ValidatePassword(req.NewPassword); err != nil {
			return models.User{}, fieldError(validators.FieldPassword, validationError(err))
		}

		digest, err := p.hasher.Hash(req.NewPassword)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.PasswordHash = &digest
	}

	if update.IsEmpty() {
		return models.User{}, ErrNothingToUpdate
	}

	updated, err := p.userRepository.UpdateUser(ctx, update)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrUserNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, fieldError(validators.FieldEmail, ErrEmailInUse)
	case errors.Is(err, store.ErrNothingToUpdate):
		return models.User{}, ErrNothingToUpdate
	case err != nil:
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("profile updated")
	return p.withRoles(ctx, updated)
}

// GrantRole assigns role to the account owning email.
func (p *profileService) GrantRole(ctx context.Context, email, role string) error {
	user, err := p.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user lookup by email failed: %w", err)
	}

	if err = p.userRepository.AssignRole(ctx, user.ID, role); err != nil {
		switch {
		case errors.Is(err, store.ErrRoleNotFound):
			return fmt.Errorf("%w: role %q", ErrNotFound, role)
		case errors.Is(err, store.ErrUserNotFound):
			return ErrUserNotFound
		}
		return fmt.Errorf("role assignment failed: %w", err)
	}

	p.logger.Info().Int64("user_id", user.ID).Str("role", role).Msg("role granted")
	return nil
}

func (p *profileService) findUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	return user, nil
}

func (p *profileService) withRoles(ctx context.Context, user models.User) (models.User, error) {
	roles, err := p.userRepository.GetUserRoles(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("loading roles failed")
		return models.User{}, fmt.Errorf("loading roles failed: %w", err)
	}

	user.Roles = roles
	return user, nil
}
