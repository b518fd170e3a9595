package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peopleops/hr-system/pkg/console"
)

var loginMode string

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and persist the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := newConsole()
		if err != nil {
			return err
		}

		mode := loginMode
		if mode == "" {
			mode = con.LoginModeHint()
		}

		fmt.Fprint(os.Stderr, "Password: ")
		password, err := readLine()
		if err != nil {
			return err
		}

		err = con.Login(cmd.Context(), args[0], password, mode)
		if err != nil && !errors.Is(err, console.ErrProfileResolution) {
			return err
		}
		if warning := con.Warning(); warning != "" {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}

		session := con.Session()
		fmt.Printf("Logged in as %s (%s)\n", session.Username, session.Role)
		printViews(con)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := newConsole()
		if err != nil {
			return err
		}
		if err := con.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		session := con.Session()
		fmt.Printf("User:  %s\n", session.Username)
		fmt.Printf("Role:  %s\n", session.Role)
		if session.EmployeeID != "" {
			fmt.Printf("Employee record: %s\n", session.EmployeeID)
		}
		printViews(con)
		return nil
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password (logs out on success)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(os.Stderr, "Current password: ")
		current, err := readLine()
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stderr, "New password: ")
		next, err := readLine()
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stderr, "Confirm new password: ")
		confirm, err := readLine()
		if err != nil {
			return err
		}

		if err := con.ChangePassword(cmd.Context(), current, next, confirm); err != nil {
			return err
		}
		fmt.Println("Password changed; please log in again")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginMode, "mode", "", "login portal: admin or employee (defaults to the last one used)")
}

func readLine() (string, error) {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printViews(con *console.Console) {
	views := con.Views()
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = string(v)
	}
	fmt.Printf("Views: %s (active: %s)\n", strings.Join(names, ", "), con.ActiveView())
}
