// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/access"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/adapter"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/store"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	AuthService       ClientAuthService
	NavigationService ClientNavigationService
}

// NewClientServices wires the client services.
func NewClientServices(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, routes access.RouteTable, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(sessions, serverAdapter, logger)

	return &ClientServices{
		AuthService:       authSvc,
		NavigationService: NewClientNavigationService(authSvc, routes),
	}
}
