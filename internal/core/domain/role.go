package domain

import "fmt"

// Role is the closed set of actor roles in the system.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// ParseRole validates a raw role string at the trust boundary. Role strings
// arriving from tokens or stored documents are never used unvalidated.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Permissions is the fixed-shape permission record attached to employee
// accounts. Admins implicitly hold all permissions.
type Permissions struct {
	AttendanceView bool `json:"attendance_view" bson:"attendance_view"`
	LeaveApply     bool `json:"leave_apply" bson:"leave_apply"`
	ProfileView    bool `json:"profile_view" bson:"profile_view"`
}

// AllPermissions returns the permission record granted to admin sessions.
func AllPermissions() Permissions {
	return Permissions{AttendanceView: true, LeaveApply: true, ProfileView: true}
}
