package console

// ViewKey names a screen of the console. The key space is partitioned by
// role; a session can only ever land on a key within its own partition.
type ViewKey string

const (
	// ViewUnauthenticated is the only key observable without a session.
	ViewUnauthenticated ViewKey = "login"

	// Administrator partition.
	ViewDashboard  ViewKey = "dashboard"
	ViewEmployees  ViewKey = "employees"
	ViewAttendance ViewKey = "attendance"
	ViewLeave      ViewKey = "leave"
	ViewSettings   ViewKey = "settings"

	// Employee partition. The dashboard is always visible; the other keys
	// each map to a single permission flag.
	ViewEmployeeDashboard  ViewKey = "employee-dashboard"
	ViewEmployeeAttendance ViewKey = "employee-attendance"
	ViewEmployeeLeave      ViewKey = "employee-leave"
	ViewEmployeeProfile    ViewKey = "employee-profile"
)

var adminViews = []ViewKey{
	ViewDashboard,
	ViewEmployees,
	ViewAttendance,
	ViewLeave,
	ViewSettings,
}

// employeeViewPermission maps employee views to the flag that makes them
// visible. A view missing its flag is hidden, never rendered as blocked.
var employeeViewPermission = map[ViewKey]func(Permissions) bool{
	ViewEmployeeDashboard:  func(Permissions) bool { return true },
	ViewEmployeeAttendance: func(p Permissions) bool { return p.AttendanceView },
	ViewEmployeeLeave:      func(p Permissions) bool { return p.LeaveApply },
	ViewEmployeeProfile:    func(p Permissions) bool { return p.ProfileView },
}

// employeeViewOrder fixes menu order; map iteration must not leak into it.
var employeeViewOrder = []ViewKey{
	ViewEmployeeDashboard,
	ViewEmployeeAttendance,
	ViewEmployeeLeave,
	ViewEmployeeProfile,
}

// visibleViews returns the navigable keys for the session, in menu order.
// A nil session sees only the login view.
func visibleViews(s *Session) []ViewKey {
	if s == nil {
		return []ViewKey{ViewUnauthenticated}
	}
	if s.Role == RoleAdmin {
		out := make([]ViewKey, len(adminViews))
		copy(out, adminViews)
		return out
	}
	var out []ViewKey
	for _, key := range employeeViewOrder {
		if employeeViewPermission[key](s.Permissions) {
			out = append(out, key)
		}
	}
	return out
}

// defaultView picks the landing key for a session: admins land on the
// dashboard, employees on theirs. The employee dashboard is never gated, so
// even a fully revoked session has somewhere to land.
func defaultView(s *Session) ViewKey {
	switch {
	case s == nil:
		return ViewUnauthenticated
	case s.Role == RoleAdmin:
		return ViewDashboard
	default:
		return ViewEmployeeDashboard
	}
}

// viewAllowed reports whether key is a legal target for the session. It is
// the single gate Navigate consults; anything else is normalized away.
func viewAllowed(s *Session, key ViewKey) bool {
	for _, v := range visibleViews(s) {
		if v == key {
			return true
		}
	}
	return false
}
