// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/app"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/service"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/utils"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/validators"
)

var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrConflict, http.StatusConflict},
}

// errorMessages is searched in order; the most specific error comes first.
var errorMessages = []struct {
	err     error
	message string
}{
	{validators.ErrMissingFields, app.MsgMissingFields},
	{validators.ErrMissingCredentials, app.MsgMissingCredentials},
	{validators.ErrInvalidEmail, app.MsgInvalidEmail},
	{validators.ErrWeakPassword, app.MsgWeakPassword},
	{service.ErrEmailRegistered, app.MsgEmailRegistered},
	{service.ErrEmailInUse, app.MsgEmailInUse},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrAccountInactive, app.MsgAccountInactive},
	{service.ErrUserNotFound, app.MsgUserNotFound},
	{service.ErrNothingToUpdate, app.MsgNothingToUpdate},
	{service.ErrCurrentPasswordRequired, app.MsgCurrentPasswordRequired},
	{service.ErrWrongCurrentPassword, app.MsgWrongCurrentPassword},
	{utils.ErrInvalidToken, app.MsgInvalidToken},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return http.StatusText(status)
}

// writeServiceError answers a failed service call. Server-side failures are
// logged and reported with fallback only.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg(fallback)
		utils.WriteError(w, status, "", fallback)
		return
	}

	var key string
	var fieldErr *service.FieldError
	if errors.As(err, &fieldErr) {
		key = fieldErr.Field
	}

	logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, status, key, messageFromError(err, status))
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusMethodNotAllowed, "", app.MsgMethodNotAllowed)
}

func (h *Handler) apiNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusNotFound, "", app.MsgNotFound)
}
