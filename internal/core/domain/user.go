package domain

import "time"

// User models an authenticated account: the admin console login or an
// employee portal login linked to an employee record.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	EmployeeID   string      `json:"employee_id,omitempty"`
	Permissions  Permissions `json:"permissions"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// EffectivePermissions resolves the permission record used for request
// authorization: admins hold every permission regardless of what is stored.
func (u *User) EffectivePermissions() Permissions {
	if u.Role == RoleAdmin {
		return AllPermissions()
	}
	return u.Permissions
}
