// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/access"
)

const (
	defaultServerRequestTimeout = 30 * time.Second
	defaultDBQueryTimeout       = 5 * time.Second
	defaultAdapterAddress       = "http://localhost:8080"
	defaultAdapterTimeout       = 10 * time.Second
	defaultSessionDSN           = "sqlite://storefront-session.db"
)

// applyDefaults fills every field that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultServerRequestTimeout
	}
	if cfg.Storage.DB.QueryTimeout == 0 {
		cfg.Storage.DB.QueryTimeout = defaultDBQueryTimeout
	}
	if cfg.Storage.Session.DSN == "" {
		cfg.Storage.Session.DSN = defaultSessionDSN
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}

	routes := access.DefaultRouteTable()
	if len(cfg.Access.AdminPrefixes) == 0 {
		cfg.Access.AdminPrefixes = routes.Admin
	}
	if len(cfg.Access.ProtectedPrefixes) == 0 {
		cfg.Access.ProtectedPrefixes = routes.Protected
	}
	if len(cfg.Access.PublicPrefixes) == 0 {
		cfg.Access.PublicPrefixes = routes.Public
	}
	if cfg.Access.LoginPath == "" {
		cfg.Access.LoginPath = routes.LoginPath
	}
	if cfg.Access.HomePath == "" {
		cfg.Access.HomePath = routes.HomePath
	}
	if cfg.Access.LandingPath == "" {
		cfg.Access.LandingPath = routes.LandingPath
	}
}
