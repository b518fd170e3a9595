package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peopleops/hr-system/internal/api/metrics"
	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/ports"
)

// LeaveService implements leave management for admins and the self-service
// application path for employees.
type LeaveService struct {
	leave     ports.LeaveRepository
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewLeaveService(leave ports.LeaveRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *LeaveService {
	return &LeaveService{leave: leave, employees: employees, logger: logger}
}

func (s *LeaveService) List(ctx context.Context) ([]*domain.LeaveRequest, error) {
	return s.leave.List(ctx)
}

func (s *LeaveService) Create(ctx context.Context, input ports.LeaveInput) (*domain.LeaveRequest, error) {
	employee, err := s.employees.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	request := &domain.LeaveRequest{
		ID:           uuid.NewString(),
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Reason:       input.Reason,
		Status:       input.Status,
		CreatedAt:    time.Now().UTC(),
	}
	if request.Status == "" {
		request.Status = domain.LeavePending
	}

	if err := s.leave.Create(ctx, request); err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("leave", "create").Inc()
	return request, nil
}

func (s *LeaveService) Update(ctx context.Context, id string, input ports.LeaveInput) (*domain.LeaveRequest, error) {
	request, err := s.leave.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	employee, err := s.employees.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	request.EmployeeID = employee.ID
	request.EmployeeName = employee.Name
	request.StartDate = input.StartDate
	request.EndDate = input.EndDate
	request.Reason = input.Reason
	request.Status = input.Status

	if err := s.leave.Update(ctx, request); err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("leave", "update").Inc()
	return request, nil
}

func (s *LeaveService) Delete(ctx context.Context, id string) error {
	if err := s.leave.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordMutationsTotal.WithLabelValues("leave", "delete").Inc()
	return nil
}

func (s *LeaveService) ListForEmployee(ctx context.Context, employeeID string) ([]*domain.LeaveRequest, error) {
	metrics.PortalReadsTotal.WithLabelValues("leave").Inc()
	return s.leave.ListByEmployee(ctx, employeeID)
}

// Apply files a new request on behalf of the authenticated employee.
// The status always starts as Pending regardless of what the client sent.
func (s *LeaveService) Apply(ctx context.Context, employeeID string, input ports.ApplyLeaveInput) (*domain.LeaveRequest, error) {
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	request := &domain.LeaveRequest{
		ID:           uuid.NewString(),
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Reason:       input.Reason,
		Status:       domain.LeavePending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.leave.Create(ctx, request); err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("leave", "apply").Inc()
	s.logger.Info().Str("employee_id", employeeID).Str("leave_id", request.ID).Msg("leave requested")
	return request, nil
}

// Cancel withdraws the employee's own pending request. Anything already
// decided, or owned by another employee, is off limits.
func (s *LeaveService) Cancel(ctx context.Context, employeeID, requestID string) error {
	request, err := s.leave.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.EmployeeID != employeeID || request.Status != domain.LeavePending {
		return domain.ErrForbidden
	}

	if err := s.leave.Delete(ctx, requestID); err != nil {
		return err
	}

	metrics.RecordMutationsTotal.WithLabelValues("leave", "cancel").Inc()
	return nil
}
