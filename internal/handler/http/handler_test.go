// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/mock"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/service"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// testMocks bundles the service mocks behind a Handler.
type testMocks struct {
	auth       *mock.MockAuthService
	profile    *mock.MockProfileService
	pageAccess *mock.MockPageAccessService
	appInfo    *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg config.Server) (*Handler, *testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &testMocks{
		auth:       mock.NewMockAuthService(ctrl),
		profile:    mock.NewMockProfileService(ctrl),
		pageAccess: mock.NewMockPageAccessService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}

	svcs := &service.Services{
		AuthService:       m.auth,
		ProfileService:    m.profile,
		PageAccessService: m.pageAccess,
		AppInfoService:    m.appInfo,
	}

	return NewHandler(svcs, cfg, logger.Nop()), m
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
