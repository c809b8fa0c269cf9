// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/client"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	log := logger.NewClientLogger("storefront-client", os.Getenv("STOREFRONT_LOG_FILE"))
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var app client.Client = client.NewCLI(buildInfo, log)
	err := app.Run(ctx, os.Args[1:])
	stop()

	if err != nil {
		log.Error().Err(err).Msg("client command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
