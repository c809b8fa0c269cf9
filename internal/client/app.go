// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/adapter"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/service"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/store"
)

// App holds the services one client command works with.
type App struct {
	auth       service.ClientAuthService
	navigation service.ClientNavigationService
	adapter    adapter.ServerAdapter
	sessions   store.SessionStore
}

// NewApp wires the client services for cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sessions, err := store.NewSessionStore(ctx, cfg.Storage.Session.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	services := service.NewClientServices(sessions, serverAdapter, cfg.Access.RouteTable(), log)

	return &App{
		auth:       services.AuthService,
		navigation: services.NavigationService,
		adapter:    serverAdapter,
		sessions:   sessions,
	}, nil
}

// Close releases the session store.
func (a *App) Close() error {
	if a.sessions == nil {
		return nil
	}
	return a.sessions.Close()
}
