// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// API paths.
const (
	PathRegister = "/auth/register"
	PathLogin    = "/auth/login"
	PathProfile  = "/auth/profile"
	PathVersion  = "/version"

	apiPrefix = "/api"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain", "text/html", "text/css", "application/javascript"))

	router.Route(apiPrefix, func(r chi.Router) {
		r.NotFound(h.apiNotFound)
		r.MethodNotAllowed(h.methodNotAllowed)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post(PathRegister, h.register)
			r.Post(PathLogin, h.login)
			r.Get(PathVersion, h.version)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get(PathProfile, h.getProfile)
			r.Put(PathProfile, h.updateProfile)
		})
	})

	router.With(h.withRouteAccess).Handle("/*", h.pages())

	return router
}
