// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/handler"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.Shutdown()
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

// run serves until ctx is done, then shuts every transport down and waits
// for their serve loops to return.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errors.New("no servers to run")
	}

	var wg sync.WaitGroup

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.httpServer.RunServer()
		}()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.gRPCServer.RunServer()
		}()
	}

	<-ctx.Done()

	// finish started servers
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
