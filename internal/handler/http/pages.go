// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/access"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/store"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/utils"
)

// withRouteAccess runs the route access policy before a page is served.
// Non-canonical paths are first redirected to their cleaned form so that
// the policy classifies exactly the path the file server would serve. The
// session is resolved only for paths whose decision depends on it, from the
// bearer header or, for browser navigation, the authToken cookie.
// Redirects are answered with 302 and RenderNothing with 204; allowed
// requests reach next.
func (h *Handler) withRouteAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		pageAccess := h.services.PageAccessService

		pagePath := cleanPagePath(r.URL.Path)
		if pagePath != r.URL.Path {
			canonical := *r.URL
			canonical.Path, canonical.RawPath = pagePath, ""
			http.Redirect(w, r, canonical.RequestURI(), http.StatusMovedPermanently)
			return
		}

		state := access.Resolved(nil)
		if pageAccess.NeedsSession(pagePath) {
			state = pageAccess.ResolveSession(ctx, sessionTokenFromRequest(r))
		}
		decision := pageAccess.Decide(pagePath, state)

		switch {
		case decision.IsRedirect():
			logger.FromRequest(r).Debug().
				Str("path", pagePath).
				Stringer("outcome", decision.Outcome).
				Str("location", decision.Location).
				Msg("page access redirected")
			http.Redirect(w, r, decision.Location, http.StatusFound)
		case decision.Outcome == access.RenderNothing:
			w.WriteHeader(http.StatusNoContent)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// cleanPagePath returns the path the file server resolves p to: rooted,
// without empty, "." or ".." elements, keeping a trailing slash.
func cleanPagePath(p string) string {
	cleaned := path.Clean("/" + p)
	if strings.HasSuffix(p, "/") && cleaned != "/" {
		cleaned += "/"
	}
	return cleaned
}

func sessionTokenFromRequest(r *http.Request) string {
	if token, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		return token
	}
	if cookie, err := r.Cookie(store.SessionTokenKey); err == nil {
		return cookie.Value
	}
	return ""
}

// pages serves the built storefront from the configured static directory.
func (h *Handler) pages() http.Handler {
	if h.cfg.StaticDir == "" {
		return http.NotFoundHandler()
	}
	return http.FileServer(http.Dir(h.cfg.StaticDir))
}
