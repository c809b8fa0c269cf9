// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	myGRPC "github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/handler/grpc"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Addr() string {
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.Addr()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
