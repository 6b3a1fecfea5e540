package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				if !app.interactive() {
					return fmt.Errorf("--email and --password are required in non-interactive mode")
				}
				if err := credentialsForm(&email, &password).Run(); err != nil {
					return err
				}
			}

			if err := app.Auth.Login(context.Background(), email, password); err != nil {
				return err
			}

			identity := app.Session.CurrentIdentity()
			fmt.Printf("Signed in as %s\n", identity.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newSignupCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				if !app.interactive() {
					return fmt.Errorf("--email and --password are required in non-interactive mode")
				}
				if err := signupForm(&name, &email, &password).Run(); err != nil {
					return err
				}
			}

			if err := app.Auth.Signup(context.Background(), name, email, password); err != nil {
				return err
			}

			fmt.Printf("Welcome, %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(context.Background()); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := app.Session.CurrentIdentity()
			if identity == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			name := identity.DisplayName
			if name == "" {
				name = "(no display name)"
			}
			fmt.Printf("%s <%s>\n", name, identity.Email)
			return nil
		},
	}
}
