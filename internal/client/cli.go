// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/config"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// appFactory builds the App a command runs against.
type appFactory func(ctx context.Context, overrides config.ClientOverrides) (*App, error)

// CLI is the storefront command-line client.
type CLI struct {
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	newApp    appFactory

	out       io.Writer
	errOut    io.Writer
	overrides config.ClientOverrides
	app       *App
}

// NewCLI returns a CLI that wires its App from the client configuration.
func NewCLI(buildInfo models.AppBuildInfo, log *logger.Logger) *CLI {
	c := &CLI{
		buildInfo: buildInfo,
		logger:    log,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
	c.newApp = func(ctx context.Context, overrides config.ClientOverrides) (*App, error) {
		cfg, err := config.GetClientConfig(overrides)
		if err != nil {
			return nil, err
		}
		return NewApp(ctx, cfg, c.logger)
	}
	return c
}

// Run executes the command named by args.
func (c *CLI) Run(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	err := root.ExecuteContext(ctx)
	if closeErr := c.close(); closeErr != nil {
		c.logger.Err(closeErr).Msg("close client app")
	}
	return err
}

// open wires the App on first use so that help and flag errors never touch
// the session store.
func (c *CLI) open(ctx context.Context) (*App, error) {
	if c.app != nil {
		return c.app, nil
	}

	app, err := c.newApp(ctx, c.overrides)
	if err != nil {
		return nil, fmt.Errorf("init client: %w", err)
	}
	c.app = app
	return app, nil
}

func (c *CLI) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

func (c *CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront account client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.overrides.Address, "server", "s", "", "auth API base URL")
	flags.DurationVarP(&c.overrides.RequestTimeout, "timeout", "t", time.Duration(0), "request timeout")
	flags.StringVar(&c.overrides.SessionDSN, "session", "", "session store DSN (sqlite://, bolt://)")
	flags.StringVarP(&c.overrides.JSONFilePath, "config", "c", "", "path to JSON config file")

	root.AddCommand(
		c.registerCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.profileCommand(),
		c.openCommand(),
		c.versionCommand(),
	)
	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, line := range c.buildInfo.Lines("Client") {
				fmt.Fprintln(out, line)
			}

			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			serverVersion, err := app.adapter.Version(cmd.Context())
			if err != nil {
				c.logger.Debug().Err(err).Msg("server version unavailable")
				serverVersion = "unavailable"
			}
			fmt.Fprintf(out, "Server version: %s\n", serverVersion)
			return nil
		},
	}
}

// requiredFlags marks names as required on cmd.
func requiredFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(errors.Join(fmt.Errorf("mark flag %q required", name), err))
		}
	}
}
