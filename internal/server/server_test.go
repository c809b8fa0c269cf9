// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/handler"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/mock"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/service"
)

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("9.9.9").AnyTimes()

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

func TestServer_RunAndGracefulShutdown(t *testing.T) {
	srv := newTestServer(t, config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	url := "http://" + srv.httpServer.Addr() + "/api/version"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "9.9.9"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err := http.Get(url)
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BadAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "256.0.0.1:bad"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, cfg, logger.Nop())
	assert.Error(t, err)
}
