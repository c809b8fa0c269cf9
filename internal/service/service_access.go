// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/access"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
)

// pageAccessService resolves the visitor of a server-rendered page and asks
// the shared policy what to do with the request.
type pageAccessService struct {
	authService    AuthService
	profileService ProfileService
	policy         *access.Policy
}

// NewPageAccessService builds the server-render entry of policy.
func NewPageAccessService(authService AuthService, profileService ProfileService, policy *access.Policy) PageAccessService {
	return &pageAccessService{
		authService:    authService,
		profileService: profileService,
		policy:         policy,
	}
}

// ResolveSession never reports Pending: on the server the session is known
// as soon as the token is checked.
func (s *pageAccessService) ResolveSession(ctx context.Context, tokenString string) access.SessionState {
	if tokenString == "" {
		return access.Resolved(nil)
	}

	log := logger.FromContext(ctx)

	claims, err := s.authService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("page request with invalid session token")
		return access.Resolved(nil)
	}

	user, err := s.profileService.GetProfile(ctx, claims.UserID)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", claims.UserID).Msg("session user could not be loaded")
		return access.Resolved(nil)
	}

	summary := user.Summary()
	return access.Resolved(&summary)
}

func (s *pageAccessService) NeedsSession(path string) bool {
	return s.policy.Restricts(path)
}

func (s *pageAccessService) Decide(path string, state access.SessionState) access.Decision {
	return s.policy.Decide(path, state)
}
