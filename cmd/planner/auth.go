package main

import (
	"fmt"
	"os"
	"syscall"

	"planner/internal/app"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

func newLoginCmd(a *app.App) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "login [email]",
		Short: "Sign in with email/password or an OAuth provider",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if provider != "" {
				url := a.Session.SignInWithOAuth(provider, a.Config.OAuthRedirectTo)
				fmt.Printf("Open this URL in a browser to continue:\n%s\n", url)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("email required for password sign-in")
			}

			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}
			if err := a.Session.SignIn(cmd.Context(), args[0], password); err != nil {
				return err
			}

			fmt.Printf("Signed in as %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "OAuth provider (google, facebook)")
	return cmd
}

func newSignupCmd(a *app.App) *cobra.Command {
	var fullName string

	cmd := &cobra.Command{
		Use:   "signup <email>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}
			if err := a.Session.SignUp(cmd.Context(), args[0], password, fullName); err != nil {
				return err
			}

			fmt.Println("Account created. Check your email if confirmation is required.")
			return nil
		},
	}
	cmd.Flags().StringVar(&fullName, "name", "", "full name for your profile")
	return cmd
}

func newLogoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Session.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(a)
			if err != nil {
				return err
			}

			fmt.Printf("id:    %s\n", user.ID)
			fmt.Printf("email: %s\n", user.Email)
			if profile, err := a.Profiles.Get(cmd.Context(), user.ID); err == nil && profile != nil {
				fmt.Printf("name:  %s\n", profile.FullName)
			}
			return nil
		},
	}
}
