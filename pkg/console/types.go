package console

import (
	"fmt"
	"time"
)

// Role is the closed set of session roles. Role strings received from the
// backend are validated through ParseRole before a session is constructed;
// they are never trusted as free-form strings.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// ParseRole validates a raw role string at the session-construction boundary.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Permissions is the fixed-shape permission record narrowing what an
// employee session may view or do. Admin sessions implicitly hold all flags.
type Permissions struct {
	AttendanceView bool `json:"attendance_view"`
	LeaveApply     bool `json:"leave_apply"`
	ProfileView    bool `json:"profile_view"`
}

// User is the identity payload returned by the backend on login and /auth/me.
type User struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Role        string      `json:"role"`
	EmployeeID  string      `json:"employee_id,omitempty"`
	Permissions Permissions `json:"permissions"`
}

// Employee is an HR record. Role here is the free-text job title.
type Employee struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	Department  string      `json:"department"`
	Status      string      `json:"status"`
	Permissions Permissions `json:"permissions"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AttendanceEntry is one employee's presence record for one day.
type AttendanceEntry struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// LeaveRequest is a requested absence window.
type LeaveRequest struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// CompanySettings is the singleton settings document.
type CompanySettings struct {
	CompanyName      string `json:"companyName"`
	Timezone         string `json:"timezone"`
	DefaultWorkHours string `json:"defaultWorkHours"`
}

// Session is the resolved, typed record of who is logged in. It is owned by
// the Console coordinator; accessors hand out copies.
type Session struct {
	UserID      string
	Username    string
	Role        Role
	Permissions Permissions
	// EmployeeID links employee-role sessions to their HR record. Empty for
	// admin sessions.
	EmployeeID string
}

// newSession builds a Session from a raw identity payload, validating the
// role at the boundary. An identity with an unusable role degrades to a
// minimal employee session and reports ErrProfileResolution as a non-fatal
// warning; this function never strands a signed-in identity without a
// session.
func newSession(user *User) (*Session, error) {
	role, err := ParseRole(user.Role)
	if err != nil {
		return &Session{
			UserID:   user.ID,
			Username: user.Username,
			Role:     RoleEmployee,
		}, fmt.Errorf("%w: %v", ErrProfileResolution, err)
	}

	perms := user.Permissions
	if role == RoleAdmin {
		perms = Permissions{AttendanceView: true, LeaveApply: true, ProfileView: true}
	}

	return &Session{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        role,
		Permissions: perms,
		EmployeeID:  user.EmployeeID,
	}, nil
}
