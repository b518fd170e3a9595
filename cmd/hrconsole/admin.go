package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/peopleops/hr-system/pkg/console"
)

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// --- employees ---

var employeeFlags struct {
	name, email, role, department, status   string
	attendanceView, leaveApply, profileView bool
}

func employeeInputFromFlags() console.EmployeeInput {
	return console.EmployeeInput{
		Name:       employeeFlags.name,
		Email:      employeeFlags.email,
		Role:       employeeFlags.role,
		Department: employeeFlags.department,
		Status:     employeeFlags.status,
		Permissions: console.Permissions{
			AttendanceView: employeeFlags.attendanceView,
			LeaveApply:     employeeFlags.leaveApply,
			ProfileView:    employeeFlags.profileView,
		},
	}
}

func addEmployeeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&employeeFlags.name, "name", "", "full name")
	cmd.Flags().StringVar(&employeeFlags.email, "email", "", "email address")
	cmd.Flags().StringVar(&employeeFlags.role, "role", "", "job title")
	cmd.Flags().StringVar(&employeeFlags.department, "department", "", "department")
	cmd.Flags().StringVar(&employeeFlags.status, "status", "", "Active, Onboarding or Inactive")
	cmd.Flags().BoolVar(&employeeFlags.attendanceView, "attendance-view", false, "grant attendance view")
	cmd.Flags().BoolVar(&employeeFlags.leaveApply, "leave-apply", false, "grant leave application")
	cmd.Flags().BoolVar(&employeeFlags.profileView, "profile-view", false, "grant profile view")
}

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Manage employee records (admin)",
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tDEPARTMENT\tSTATUS")
		for _, e := range con.Employees() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Email, e.Role, e.Department, e.Status)
		}
		return w.Flush()
	},
}

var newAccount struct {
	username, password string
}

var employeesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Onboard an employee and provision their portal account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		created, err := con.CreateEmployee(cmd.Context(), employeeInputFromFlags(), newAccount.username, newAccount.password)
		if err != nil {
			return err
		}
		fmt.Printf("Created employee %s (%s)\n", created.Name, created.ID)
		return nil
	},
}

var employeesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit an employee record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		updated, err := con.UpdateEmployee(cmd.Context(), args[0], employeeInputFromFlags())
		if err != nil {
			return err
		}
		fmt.Printf("Updated employee %s\n", updated.ID)
		return nil
	},
}

var employeesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an employee and their portal account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		if err := con.DeleteEmployee(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted employee %s\n", args[0])
		return nil
	},
}

// --- attendance ---

var attendanceFlags struct {
	employeeID, date, status string
}

func addAttendanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&attendanceFlags.employeeID, "employee", "", "employee id")
	cmd.Flags().StringVar(&attendanceFlags.date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&attendanceFlags.status, "status", "", "Present, Remote or Absent")
}

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Manage attendance entries (admin)",
}

var attendanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List attendance entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tEMPLOYEE\tDATE\tSTATUS")
		for _, a := range con.Attendance() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.EmployeeName, a.Date, a.Status)
		}
		return w.Flush()
	},
}

var attendanceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an attendance entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		created, err := con.CreateAttendance(cmd.Context(), console.AttendanceInput{
			EmployeeID: attendanceFlags.employeeID,
			Date:       attendanceFlags.date,
			Status:     attendanceFlags.status,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s for %s on %s\n", created.Status, created.EmployeeName, created.Date)
		return nil
	},
}

var attendanceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit an attendance entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		updated, err := con.UpdateAttendance(cmd.Context(), args[0], console.AttendanceInput{
			EmployeeID: attendanceFlags.employeeID,
			Date:       attendanceFlags.date,
			Status:     attendanceFlags.status,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Updated entry %s\n", updated.ID)
		return nil
	},
}

var attendanceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an attendance entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		if err := con.DeleteAttendance(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted entry %s\n", args[0])
		return nil
	},
}

// --- leave ---

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Manage leave requests (admin)",
}

var leaveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leave requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tEMPLOYEE\tFROM\tTO\tSTATUS\tREASON")
		for _, l := range con.LeaveRequests() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", l.ID, l.EmployeeName, l.StartDate, l.EndDate, l.Status, l.Reason)
		}
		return w.Flush()
	},
}

// decideLeave re-submits the cached request with a new status.
func decideLeave(cmd *cobra.Command, id, status string) error {
	con, err := resumedConsole(cmd.Context())
	if err != nil {
		return err
	}
	for _, l := range con.LeaveRequests() {
		if l.ID == id {
			_, err := con.UpdateLeave(cmd.Context(), id, console.LeaveInput{
				EmployeeID: l.EmployeeID,
				StartDate:  l.StartDate,
				EndDate:    l.EndDate,
				Reason:     l.Reason,
				Status:     status,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Request %s is now %s\n", id, status)
			return nil
		}
	}
	return fmt.Errorf("leave request %q not found", id)
}

var leaveApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a leave request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decideLeave(cmd, args[0], "Approved")
	},
}

var leaveRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a leave request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decideLeave(cmd, args[0], "Rejected")
	},
}

var leaveDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a leave request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		if err := con.DeleteLeave(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted request %s\n", args[0])
		return nil
	},
}

// --- settings ---

var settingsFlags console.CompanySettings

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and edit company settings (admin)",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show company settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		s := con.Settings()
		fmt.Printf("Company:    %s\n", s.CompanyName)
		fmt.Printf("Timezone:   %s\n", s.Timezone)
		fmt.Printf("Work hours: %s\n", s.DefaultWorkHours)
		return nil
	},
}

var settingsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace company settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := resumedConsole(cmd.Context())
		if err != nil {
			return err
		}
		if _, err := con.UpdateSettings(cmd.Context(), settingsFlags); err != nil {
			return err
		}
		fmt.Println("Settings updated")
		return nil
	},
}

func init() {
	employeesCmd.AddCommand(employeesListCmd, employeesCreateCmd, employeesUpdateCmd, employeesDeleteCmd)
	addEmployeeFlags(employeesCreateCmd)
	addEmployeeFlags(employeesUpdateCmd)
	employeesCreateCmd.Flags().StringVar(&newAccount.username, "username", "", "portal login username")
	employeesCreateCmd.Flags().StringVar(&newAccount.password, "password", "", "provisional portal password")

	attendanceCmd.AddCommand(attendanceListCmd, attendanceAddCmd, attendanceUpdateCmd, attendanceDeleteCmd)
	addAttendanceFlags(attendanceAddCmd)
	addAttendanceFlags(attendanceUpdateCmd)

	leaveCmd.AddCommand(leaveListCmd, leaveApproveCmd, leaveRejectCmd, leaveDeleteCmd)

	settingsCmd.AddCommand(settingsShowCmd, settingsUpdateCmd)
	settingsUpdateCmd.Flags().StringVar(&settingsFlags.CompanyName, "company", "", "company name")
	settingsUpdateCmd.Flags().StringVar(&settingsFlags.Timezone, "timezone", "", "IANA timezone")
	settingsUpdateCmd.Flags().StringVar(&settingsFlags.DefaultWorkHours, "work-hours", "", "default daily working hours")
}
