// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/service"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// grantAdmin assigns the admin role to the account owning email.
func grantAdmin(ctx context.Context, profiles service.ProfileService, email string, log *logger.Logger) error {
	if err := profiles.GrantRole(ctx, email, models.RoleAdmin); err != nil {
		return fmt.Errorf("grant admin role to %s: %w", email, err)
	}

	log.Info().Str("email", email).Msg("admin role granted")
	return nil
}
