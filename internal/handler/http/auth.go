// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/app"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/utils"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, "", app.MsgInvalidBody)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: app.MsgRegistered,
		User:    models.NewRegisteredUser(registeredUser),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, "", app.MsgInvalidBody)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoggedIn,
		Token:   token.String(),
		User:    foundUser.Summary(),
	}, http.StatusOK)
}
