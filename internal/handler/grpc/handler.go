// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the storefront over gRPC. Only the standard health
// service is served; the auth API itself is HTTP.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/service"
)

// AuthServiceName is the health-checked name of the auth API.
const AuthServiceName = "storefront.auth"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows the lifecycle of the
// process: NOT_SERVING until Register, SERVING while running, NOT_SERVING
// again after Shutdown.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] over services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the handler's services to s and marks them serving.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown reports NOT_SERVING to every watcher.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(st healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(AuthServiceName, st)
}

// UnaryLogging logs method, status code and duration of every unary call.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Stringer("code", status.Code(err)).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
