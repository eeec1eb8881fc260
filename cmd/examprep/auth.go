package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/examprep/internal/identity"
)

func newLoginCommand() *cobra.Command {
	var email, password string

	command := &cobra.Command{
		Use:   "login",
		Short: "Sign in. Emails without an account sign in as the demo student, or the demo admin for the admin email",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			user, err := a.identity.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}

	command.Flags().StringVar(&email, "email", "", "account email")
	command.Flags().StringVar(&password, "password", "", "account password")
	_ = command.MarkFlagRequired("email")
	_ = command.MarkFlagRequired("password")
	return command
}

func newRegisterCommand() *cobra.Command {
	var name, email, password string

	command := &cobra.Command{
		Use:   "register",
		Short: "Create a student account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			user, err := a.identity.Register(cmd.Context(), name, email, password)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Your account has been created.\n", user.Name)
			return nil
		},
	}

	command.Flags().StringVar(&name, "name", "", "full name")
	command.Flags().StringVar(&email, "email", "", "account email")
	command.Flags().StringVar(&password, "password", "", "account password")
	_ = command.MarkFlagRequired("name")
	_ = command.MarkFlagRequired("email")
	_ = command.MarkFlagRequired("password")
	return command
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if err := a.identity.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			user, err := a.authorize(cmd.Context(), identity.ActionViewDashboard)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
			_, _ = fmt.Fprintf(out, "Role: %s\n", user.Role)
			_, _ = fmt.Fprintf(out, "Streak: %d days  Points: %d  Rank: #%d\n", user.Streak, user.TotalPoints, user.Rank)
			return nil
		},
	}
}
