package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/cliconfig"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/store"
)

func loginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session for later commands",
		Long: strings.TrimSpace(`
Sign in with the admin account. Without --password the password is read from
` + cliconfig.EnvPrefix + `PASSWORD, then from the first line of standard input.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = os.Getenv(cliconfig.EnvPrefix + "EMAIL")
			}
			if password == "" {
				password = os.Getenv(cliconfig.EnvPrefix + "PASSWORD")
			}
			if password == "" {
				p, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				password = p
			}

			auth := a.store().Auth()
			if err := auth.Login(commandContext(cmd), email, password); err != nil {
				return fmt.Errorf("login: %w", err)
			}
			return printAuth(a, auth.State())
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email (default: $"+cliconfig.EnvPrefix+"EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "account password (prefer "+cliconfig.EnvPrefix+"PASSWORD or stdin)")
	return cmd
}

func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store().Auth().Logout(commandContext(cmd)); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			if a.jsonOutput() {
				return renderJSON(a.out, a.store().Auth().State())
			}
			_, err := fmt.Fprintln(a.out, "Signed out.")
			return err
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printAuth(a, a.store().Auth().State())
		},
	}
}

func verifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the stored session with the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := a.store().Auth()
			if err := auth.Verify(commandContext(cmd)); err != nil {
				if errors.Is(err, domain.ErrSessionExpired) {
					return errors.New("session expired: run folio login")
				}
				return fmt.Errorf("verify: %w", err)
			}
			return printAuth(a, auth.State())
		},
	}
}

func printAuth(a *app, st store.AuthState) error {
	if a.jsonOutput() {
		return renderJSON(a.out, st)
	}
	if !st.IsAuthenticated() || st.User == nil {
		_, err := fmt.Fprintln(a.out, dimStyle.Render("Not signed in."))
		return err
	}
	return renderFields(a.out, [][2]string{
		{"Status", okStyle.Render(st.Status.String())},
		{"Name", orDash(st.User.Name)},
		{"Email", orDash(st.User.Email)},
		{"API", a.cfg.APIURL},
	})
}
