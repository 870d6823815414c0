package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/spf13/cobra"
)

func (c *cli) registerCommand() *cobra.Command {
	var email, username string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := newSecret(c.Prompter, "Account password: ")
			if err != nil {
				return err
			}

			user, err := c.Auth.Register(cmd.Context(), models.User{
				Email:    email,
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err = c.Vault.Refresh(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Welcome, %s!", user.Username)))
			fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("Next: create your vault passcode with `lockr passcode create`."))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&username, "username", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func (c *cli) loginCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and cache the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := c.Prompter.Password("Account password: ")
			if err != nil {
				return err
			}

			user, err := c.Auth.Login(cmd.Context(), models.User{Email: email, Password: password})
			if err != nil {
				return err
			}
			if err = c.Vault.Refresh(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Logged in as "+user.Email))
			if !c.Vault.HasPasscode() {
				fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("Next: create your vault passcode with `lockr passcode create`."))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (c *cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Lock the vault and forget the cached session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := c.Auth.Logout(cmd.Context())
			if err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func (c *cli) passcodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcode",
		Short: "Manage the vault passcode",
	}

	cmd.AddCommand(sessionRequired(&cobra.Command{
		Use:   "create",
		Short: "Set the 6-digit passcode that encrypts the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			passcode, err := newSecret(c.Prompter, "New passcode (6 digits): ")
			if err != nil {
				return err
			}
			if err = c.Vault.CreatePasscode(cmd.Context(), passcode); err != nil {
				return err
			}
			if !c.shell {
				c.Vault.Lock()
			}

			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Passcode created."))
			fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("If you forget it, `lockr passcode reset` sets a new one, but entries encrypted with the old one stay unreadable."))
			return nil
		},
	}))

	cmd.AddCommand(sessionRequired(&cobra.Command{
		Use:   "reset",
		Short: "Replace a forgotten passcode using a code sent to your email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Vault.RequestPasscodeReset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "A verification code was sent to your email.")

			code, err := c.Prompter.Line("Code from email: ")
			if err != nil {
				return err
			}
			passcode, err := newSecret(c.Prompter, "New passcode (6 digits): ")
			if err != nil {
				return err
			}
			if err = c.Vault.ResetPasscode(cmd.Context(), strings.TrimSpace(code), passcode); err != nil {
				return err
			}
			if !c.shell {
				c.Vault.Lock()
			}

			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Passcode reset."))
			fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("Entries saved under the old passcode are shown as stored."))
			return nil
		},
	}))
	return cmd
}
