// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/app"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/utils"
)

// auth rejects requests without a valid bearer session token and stores the
// verified claims in the request context.
//
// A missing or malformed "Authorization" header is answered with
// 401 "Unauthorized"; a token that fails verification with
// 401 "Invalid or expired token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no bearer token")
			utils.WriteError(w, http.StatusUnauthorized, "", app.MsgUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, http.StatusUnauthorized, "", app.MsgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSessionClaims(ctx, claims)))
	})
}
