// Command hrconsole is a terminal client for the HR system. It drives the
// same session, navigation, and data core a graphical shell would, persisting
// the credential between invocations.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/peopleops/hr-system/pkg/console"
	"github.com/peopleops/hr-system/pkg/logger"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:           "hrconsole",
	Short:         "Terminal console for the HR system",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		switch {
		case errors.Is(err, console.ErrUnauthorized):
			fmt.Fprintln(os.Stderr, "Error: not logged in (run `hrconsole login`)")
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("HR_API_URL")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "base URL of the HR API")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, passwdCmd)
	rootCmd.AddCommand(employeesCmd, attendanceCmd, leaveCmd, settingsCmd)
	rootCmd.AddCommand(portalCmd)
}

// newConsole builds a Console backed by the on-disk credential store.
func newConsole() (*console.Console, error) {
	path, err := console.DefaultStorePath()
	if err != nil {
		return nil, err
	}
	store, err := console.NewFileStore(path)
	if err != nil {
		return nil, err
	}
	// Command output goes to stdout; diagnostics stay on stderr.
	log := logger.Init(logger.Options{
		Level:  logLevel(),
		Pretty: true,
		Output: os.Stderr,
	})
	return console.New(apiURL, store, log), nil
}

func logLevel() string {
	if lvl := os.Getenv("HR_LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "warn"
}

// resumedConsole restores the persisted session; commands that need an
// authenticated console go through here.
func resumedConsole(ctx context.Context) (*console.Console, error) {
	con, err := newConsole()
	if err != nil {
		return nil, err
	}
	if err := con.Resume(ctx); err != nil && !errors.Is(err, console.ErrProfileResolution) {
		return nil, err
	}
	if warning := con.Warning(); warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	return con, nil
}
