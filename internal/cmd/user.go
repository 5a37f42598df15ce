// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the signed-in user",
		Long: `Sign in, sign out, and show the current user.

Signing in only selects which per-user data files the other commands
read and write; there is no password check.`,
	}

	cmd.AddCommand(newUserSignInCmd(app))
	cmd.AddCommand(newUserSignOutCmd(app))
	cmd.AddCommand(newUserWhoamiCmd(app))

	return cmd
}

func newUserSignInCmd(app *App) *cobra.Command {
	var (
		email          string
		profilePicture string
	)

	cmd := &cobra.Command{
		Use:   "signin <username>",
		Short: "Sign in as a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.SignIn(args[0], email, profilePicture); err != nil {
				return err
			}
			fmt.Printf("Signed in as %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email to store with the session")
	cmd.Flags().StringVar(&profilePicture, "picture", "", "Profile picture path")

	return cmd
}

func newUserSignOutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signout",
		Short: "Sign out the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.SignOut(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
	return cmd
}

func newUserWhoamiCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := app.Sessions.Current()
			if asJSON {
				return printJSON(session)
			}
			if session.IsGuest() {
				fmt.Println("Not signed in (guest).")
				return nil
			}
			fmt.Printf("Signed in as %s", session.Username)
			if session.Email != "" {
				fmt.Printf(" <%s>", session.Email)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}
