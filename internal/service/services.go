// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the storefront's use cases: registration, login,
// profile management and page access on the server, and the session-keeping
// auth and navigation flows of the client.
package service

import (
	"fmt"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/access"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/crypto"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/store"
)

// Services groups the server-side services.
type Services struct {
	AuthService       AuthService
	ProfileService    ProfileService
	PageAccessService PageAccessService
	AppInfoService    AppInfoService
}

// NewServices wires the server services over storages.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	hasher := crypto.NewPasswordHasher()
	authSvc := NewAuthService(storages.UserRepository, hasher, cfg.App, logger)
	profileSvc := NewProfileService(storages.UserRepository, hasher, logger)

	return &Services{
		AuthService:       authSvc,
		ProfileService:    profileSvc,
		PageAccessService: NewPageAccessService(authSvc, profileSvc, access.NewPolicy(cfg.Access.RouteTable())),
		AppInfoService:    appInfo,
	}, nil
}
