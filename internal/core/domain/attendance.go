package domain

import "time"

// Attendance statuses form a closed set.
const (
	AttendancePresent = "Present"
	AttendanceRemote  = "Remote"
	AttendanceAbsent  = "Absent"
)

// AttendanceEntry records one employee's presence for one day.
// EmployeeName is denormalized at write time so lists render without a join.
type AttendanceEntry struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
