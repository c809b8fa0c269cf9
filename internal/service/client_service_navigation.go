// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/access"
)

type clientNavigationService struct {
	authService ClientAuthService
	guard       *access.Guard

	mu    sync.RWMutex
	state access.SessionState
}

// NewClientNavigationService evaluates the policy for routes against the
// session kept by authService. The state starts Pending.
func NewClientNavigationService(authService ClientAuthService, routes access.RouteTable) ClientNavigationService {
	return &clientNavigationService{
		authService: authService,
		guard:       access.NewGuard(access.NewPolicy(routes)),
		state:       access.Pending(),
	}
}

func (n *clientNavigationService) State() access.SessionState {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.state
}

func (n *clientNavigationService) Refresh(ctx context.Context) (access.SessionState, error) {
	session, err := n.authService.RestoreSession(ctx)
	if err != nil {
		return n.State(), err
	}

	state := access.Resolved(nil)
	if session.IsAuthenticated() {
		user := session.User
		state = access.Resolved(&user)
	}

	n.mu.Lock()
	n.state = state
	n.mu.Unlock()

	return state, nil
}

func (n *clientNavigationService) Navigate(path string) (access.Decision, bool) {
	return n.guard.Evaluate(path, n.State())
}
