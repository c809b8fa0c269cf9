// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
)

// version answers GET /api/version with the running version as plain text.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	v := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, v); err != nil {
		logger.FromRequest(r).Err(err).Msg("write version")
	}
}
