// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/access"
	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/service"
)

// maxRedirects bounds one open command.
const maxRedirects = 10

// ErrTooManyRedirects is returned when open keeps being redirected.
var ErrTooManyRedirects = errors.New("too many redirects")

func (c *CLI) openCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Resolve a storefront page against the stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			if _, err = app.navigation.Refresh(cmd.Context()); err != nil {
				c.logger.Warn().Err(err).Msg("session could not be restored")
			}

			return followPage(cmd.OutOrStdout(), app.navigation, args[0])
		},
	}
}

// followPage evaluates path and follows redirects until a page renders.
func followPage(w io.Writer, nav service.ClientNavigationService, path string) error {
	for range maxRedirects {
		decision, navigate := nav.Navigate(path)

		switch {
		case decision.Outcome == access.Allow:
			fmt.Fprintf(w, "%s: render\n", path)
			return nil
		case decision.Outcome == access.RenderNothing:
			fmt.Fprintf(w, "%s: session pending, nothing rendered\n", path)
			return nil
		case !navigate:
			fmt.Fprintf(w, "%s: %s to %s already issued\n", path, decision.Outcome, decision.Location)
			return nil
		}

		fmt.Fprintf(w, "%s: %s -> %s\n", path, decision.Outcome, decision.Location)

		next, err := url.Parse(decision.Location)
		if err != nil {
			return fmt.Errorf("parse redirect location %q: %w", decision.Location, err)
		}
		path = next.Path
	}

	return fmt.Errorf("%w: stopped at %s", ErrTooManyRedirects, path)
}
