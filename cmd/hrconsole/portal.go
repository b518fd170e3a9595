package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var portalCmd = &cobra.Command{
	Use:   "portal",
	Short: "Employee self-service",
}

var portalMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show my profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		profile := con.Profile()
		if profile == nil {
			fmt.Println("Profile not available")
			return nil
		}
		fmt.Printf("Name:       %s\n", profile.Name)
		fmt.Printf("Email:      %s\n", profile.Email)
		fmt.Printf("Role:       %s\n", profile.Role)
		fmt.Printf("Department: %s\n", profile.Department)
		fmt.Printf("Status:     %s\n", profile.Status)
		return nil
	},
}

var portalAttendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Show my attendance entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "DATE\tSTATUS")
		for _, a := range con.MyAttendance() {
			fmt.Fprintf(w, "%s\t%s\n", a.Date, a.Status)
		}
		return w.Flush()
	},
}

var portalLeaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Show my leave requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tFROM\tTO\tSTATUS\tREASON")
		for _, l := range con.MyLeave() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.ID, l.StartDate, l.EndDate, l.Status, l.Reason)
		}
		return w.Flush()
	},
}

var applyFlags struct {
	start, end, reason string
}

var portalApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply for leave",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		created, err := con.ApplyLeave(cmd.Context(), applyFlags.start, applyFlags.end, applyFlags.reason)
		if err != nil {
			return err
		}
		fmt.Printf("Filed request %s (%s to %s, %s)\n", created.ID, created.StartDate, created.EndDate, created.Status)
		return nil
	},
}

var portalCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Withdraw a pending leave request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		if err := con.CancelLeave(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Withdrew request %s\n", args[0])
		return nil
	},
}

func init() {
	portalCmd.AddCommand(portalMeCmd, portalAttendanceCmd, portalLeaveCmd, portalApplyCmd, portalCancelCmd)
	portalApplyCmd.Flags().StringVar(&applyFlags.start, "from", "", "start date (YYYY-MM-DD)")
	portalApplyCmd.Flags().StringVar(&applyFlags.end, "to", "", "end date (YYYY-MM-DD)")
	portalApplyCmd.Flags().StringVar(&applyFlags.reason, "reason", "", "reason for the absence")
}
