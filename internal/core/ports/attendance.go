package ports

import (
	"context"

	"github.com/peopleops/hr-system/internal/core/domain"
)

// AttendanceRepository persists attendance entries.
type AttendanceRepository interface {
	List(ctx context.Context) ([]*domain.AttendanceEntry, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*domain.AttendanceEntry, error)
	FindByID(ctx context.Context, id string) (*domain.AttendanceEntry, error)
	Create(ctx context.Context, e *domain.AttendanceEntry) error
	Update(ctx context.Context, e *domain.AttendanceEntry) error
	Delete(ctx context.Context, id string) error
}

// AttendanceInput carries one attendance mutation. The employee name is
// resolved server-side from EmployeeID.
type AttendanceInput struct {
	EmployeeID string
	Date       string
	Status     string
}

// AttendanceService defines attendance operations for both the admin console
// and the employee portal.
type AttendanceService interface {
	List(ctx context.Context) ([]*domain.AttendanceEntry, error)
	Create(ctx context.Context, input AttendanceInput) (*domain.AttendanceEntry, error)
	Update(ctx context.Context, id string, input AttendanceInput) (*domain.AttendanceEntry, error)
	Delete(ctx context.Context, id string) error
	ListForEmployee(ctx context.Context, employeeID string) ([]*domain.AttendanceEntry, error)
}
