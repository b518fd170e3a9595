package console

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// adminSnapshot is the result of one administrator batch load. It is applied
// to the console cache atomically: either every field is fresh or none is.
type adminSnapshot struct {
	Employees     []Employee
	Attendance    []AttendanceEntry
	LeaveRequests []LeaveRequest
	Settings      CompanySettings
}

// loadAdmin fetches the four administrator collections in parallel. Any
// failure aborts the batch; partially fetched results are discarded by the
// caller, never applied.
func loadAdmin(ctx context.Context, c *Client) (*adminSnapshot, error) {
	snap := &adminSnapshot{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.Do(ctx, http.MethodGet, "/api/employees", nil, &snap.Employees)
	})
	g.Go(func() error {
		return c.Do(ctx, http.MethodGet, "/api/attendance", nil, &snap.Attendance)
	})
	g.Go(func() error {
		return c.Do(ctx, http.MethodGet, "/api/leave", nil, &snap.LeaveRequests)
	})
	g.Go(func() error {
		return c.Do(ctx, http.MethodGet, "/api/settings", nil, &snap.Settings)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// employeeSnapshot is the result of one employee portal batch load.
type employeeSnapshot struct {
	Profile      *Employee
	MyAttendance []AttendanceEntry
	MyLeave      []LeaveRequest
}

// loadEmployee fetches only the portal resources the session's permission
// flags grant. A revoked flag means the request is never issued and the
// matching field stays empty; visibility gating happens here, not on render.
func loadEmployee(ctx context.Context, c *Client, perms Permissions) (*employeeSnapshot, error) {
	snap := &employeeSnapshot{}
	g, ctx := errgroup.WithContext(ctx)
	if perms.ProfileView {
		g.Go(func() error {
			return c.Do(ctx, http.MethodGet, "/api/employee/me", nil, &snap.Profile)
		})
	}
	if perms.AttendanceView {
		g.Go(func() error {
			return c.Do(ctx, http.MethodGet, "/api/employee/attendance", nil, &snap.MyAttendance)
		})
	}
	if perms.LeaveApply {
		g.Go(func() error {
			return c.Do(ctx, http.MethodGet, "/api/employee/leave", nil, &snap.MyLeave)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
