package domain

import "time"

// Employee statuses form a closed set; anything else is rejected at the
// request-validation boundary.
const (
	EmployeeStatusActive     = "Active"
	EmployeeStatusOnboarding = "Onboarding"
	EmployeeStatusInactive   = "Inactive"
)

// Employee is an HR record. JobTitle is free text chosen by HR and is
// unrelated to the account Role.
type Employee struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	JobTitle    string      `json:"role"`
	Department  string      `json:"department"`
	Status      string      `json:"status"`
	Permissions Permissions `json:"permissions"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
