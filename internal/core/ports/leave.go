package ports

import (
	"context"

	"github.com/peopleops/hr-system/internal/core/domain"
)

// LeaveRepository persists leave requests.
type LeaveRepository interface {
	List(ctx context.Context) ([]*domain.LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*domain.LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	Create(ctx context.Context, l *domain.LeaveRequest) error
	Update(ctx context.Context, l *domain.LeaveRequest) error
	Delete(ctx context.Context, id string) error
}

// LeaveInput carries an admin-side leave mutation.
type LeaveInput struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Reason     string
	Status     string
}

// ApplyLeaveInput carries a portal-side leave application. Status is always
// forced to Pending by the service.
type ApplyLeaveInput struct {
	StartDate string
	EndDate   string
	Reason    string
}

// LeaveService defines leave operations for the admin console and the
// employee portal.
type LeaveService interface {
	List(ctx context.Context) ([]*domain.LeaveRequest, error)
	Create(ctx context.Context, input LeaveInput) (*domain.LeaveRequest, error)
	Update(ctx context.Context, id string, input LeaveInput) (*domain.LeaveRequest, error)
	Delete(ctx context.Context, id string) error
	ListForEmployee(ctx context.Context, employeeID string) ([]*domain.LeaveRequest, error)
	Apply(ctx context.Context, employeeID string, input ApplyLeaveInput) (*domain.LeaveRequest, error)
	// Cancel removes the employee's own pending request. Requests that are
	// not pending, or belong to someone else, are ErrForbidden.
	Cancel(ctx context.Context, employeeID, requestID string) error
}
