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

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "", app.MsgUnauthorized)
		return
	}

	user, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFetchProfileFailed)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{User: models.NewProfile(user)}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "", app.MsgUnauthorized)
		return
	}

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, "", app.MsgInvalidBody)
		return
	}

	user, err := h.services.ProfileService.UpdateProfile(ctx, userID, req)
	if err != nil {
		writeServiceError(w, r, err, app.MsgUpdateFailed)
		return
	}

	utils.WriteJSON(w, models.UpdateProfileResponse{
		Message: app.MsgProfileUpdated,
		User:    models.NewUpdatedProfile(user),
	}, http.StatusOK)
}
