package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/jawa-showroom/internal/application/dto"
	"github.com/jhoicas/jawa-showroom/pkg/format"
)

func newRegisterCmd(app *App) *cobra.Command {
	var in dto.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a customer account",
		Long: `Create a customer account. Missing fields are asked for interactively;
the password is always read from the terminal without echo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := []struct {
				value *string
				label string
			}{
				{&in.Username, "Username: "},
				{&in.FullName, "Full name: "},
				{&in.Email, "Email: "},
				{&in.Phone, "Phone (10 digits): "},
				{&in.Address, "Address: "},
			}
			for _, f := range fields {
				if *f.value != "" {
					continue
				}
				v, err := app.prompt(f.label)
				if err != nil {
					return err
				}
				*f.value = v
			}
			var err error
			if in.Password, err = app.secret("Password: "); err != nil {
				return err
			}
			if in.ConfirmPassword, err = app.secret("Confirm password: "); err != nil {
				return err
			}

			if err := app.Auth.Register(in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registration successful! You can now log in.")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Username, "username", "", "username (letters, digits, underscore)")
	f.StringVar(&in.FullName, "name", "", "full name")
	f.StringVar(&in.Email, "email", "", "email address")
	f.StringVar(&in.Phone, "phone", "", "10-digit mobile number")
	f.StringVar(&in.Address, "address", "", "postal address")
	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session for later commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username == "" {
				if username, err = app.prompt("Username: "); err != nil {
					return err
				}
			}
			password, err := app.secret("Password: ")
			if err != nil {
				return err
			}
			if err := app.Auth.Login(username, password); err != nil {
				return err
			}
			if err := app.persistSession(); err != nil {
				app.Log.Warn().Err(err).Msg("la sesión no se conservará entre comandos")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", app.Auth.CurrentUser().FullName)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.Auth.Logout()
			app.clearSession()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.requireUser()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Username : %s\n", u.Username)
			fmt.Fprintf(out, "Name     : %s\n", u.FullName)
			fmt.Fprintf(out, "Email    : %s\n", u.Email)
			fmt.Fprintf(out, "Phone    : %s\n", u.Phone)
			fmt.Fprintf(out, "Address  : %s\n", u.Address)
			if !u.CreatedAt.IsZero() {
				fmt.Fprintf(out, "Since    : %s\n", u.CreatedAt.Format(format.DateLayout))
			}
			return nil
		},
	}
}
