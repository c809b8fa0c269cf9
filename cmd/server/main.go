// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/handler"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/server"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/service"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/store"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("storefront-auth")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	cfg.FallbackVersion(buildInfo.BuildVersion())

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	closeStorages := func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.GrantAdminEmail != "" {
		err = grantAdmin(ctx, services.ProfileService, cfg.GrantAdminEmail, log)
		closeStorages()
		if err != nil {
			log.Fatal().Err(err).Msg("error granting admin role")
		}
		return
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
	closeStorages()
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines("Build") {
		fmt.Println(line)
	}
}
