// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

func (c *CLI) registerCommand() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a customer account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			user, err := app.auth.Register(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s %s <%s> (id %d). Sign in with the login command.\n",
				user.FirstName, user.LastName, user.Email, user.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.FirstName, "first-name", "", "first name")
	flags.StringVar(&req.LastName, "last-name", "", "last name")
	flags.StringVarP(&req.Email, "email", "e", "", "email address")
	flags.StringVarP(&req.Password, "password", "p", "", "password")
	requiredFlags(cmd, "first-name", "last-name", "email", "password")

	return cmd
}

func (c *CLI) loginCommand() *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			session, err := app.auth.Login(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", describeUser(session.User))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&req.Email, "email", "e", "", "email address")
	flags.StringVarP(&req.Password, "password", "p", "", "password")
	requiredFlags(cmd, "email", "password")

	return cmd
}

func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			if err = app.auth.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (c *CLI) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user from the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			session, err := app.auth.RestoreSession(cmd.Context())
			if err != nil {
				return err
			}

			if !session.IsAuthenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), describeUser(session.User))
			return nil
		},
	}
}

func (c *CLI) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			profile, err := app.auth.FetchProfile(cmd.Context())
			if err != nil {
				return err
			}

			printProfile(cmd.OutOrStdout(), profile)
			return nil
		},
	}

	cmd.AddCommand(c.profileUpdateCommand())
	return cmd
}

func (c *CLI) profileUpdateCommand() *cobra.Command {
	var req models.ProfileUpdateRequest

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change names, email or password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			updated, err := app.auth.UpdateProfile(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated: %s\n", describeUser(updated.Summary()))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.FirstName, "first-name", "", "new first name")
	flags.StringVar(&req.LastName, "last-name", "", "new last name")
	flags.StringVarP(&req.Email, "email", "e", "", "new email address")
	flags.StringVar(&req.CurrentPassword, "current-password", "", "current password, required with --new-password")
	flags.StringVar(&req.NewPassword, "new-password", "", "new password")
	cmd.MarkFlagsRequiredTogether("current-password", "new-password")
	cmd.MarkFlagsOneRequired("first-name", "last-name", "email", "new-password")

	return cmd
}

func describeUser(u models.UserSummary) string {
	s := fmt.Sprintf("%s %s <%s>", u.FirstName, u.LastName, u.Email)
	if len(u.Roles) > 0 {
		s += " [" + strings.Join(u.Roles, ", ") + "]"
	}
	return s
}

func printProfile(w io.Writer, p models.Profile) {
	fmt.Fprintf(w, "ID:             %d\n", p.ID)
	fmt.Fprintf(w, "Name:           %s %s\n", p.FirstName, p.LastName)
	fmt.Fprintf(w, "Email:          %s\n", p.Email)
	fmt.Fprintf(w, "Email verified: %t\n", p.EmailVerified)
	fmt.Fprintf(w, "Roles:          %s\n", strings.Join(p.Roles, ", "))
	fmt.Fprintf(w, "Member since:   %s\n", p.CreatedAt.Format("2006-01-02"))
}
