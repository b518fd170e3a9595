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

// AttendanceService implements attendance tracking. The employee name is
// denormalized into each entry at write time.
type AttendanceService struct {
	attendance ports.AttendanceRepository
	employees  ports.EmployeeRepository
	logger     zerolog.Logger
}

func NewAttendanceService(attendance ports.AttendanceRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{attendance: attendance, employees: employees, logger: logger}
}

func (s *AttendanceService) List(ctx context.Context) ([]*domain.AttendanceEntry, error) {
	return s.attendance.List(ctx)
}

func (s *AttendanceService) Create(ctx context.Context, input ports.AttendanceInput) (*domain.AttendanceEntry, error) {
	employee, err := s.employees.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	entry := &domain.AttendanceEntry{
		ID:           uuid.NewString(),
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		Date:         input.Date,
		Status:       input.Status,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.attendance.Create(ctx, entry); err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("attendance", "create").Inc()
	return entry, nil
}

func (s *AttendanceService) Update(ctx context.Context, id string, input ports.AttendanceInput) (*domain.AttendanceEntry, error) {
	entry, err := s.attendance.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	employee, err := s.employees.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	entry.EmployeeID = employee.ID
	entry.EmployeeName = employee.Name
	entry.Date = input.Date
	entry.Status = input.Status

	if err := s.attendance.Update(ctx, entry); err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("attendance", "update").Inc()
	return entry, nil
}

func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	if err := s.attendance.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordMutationsTotal.WithLabelValues("attendance", "delete").Inc()
	return nil
}

func (s *AttendanceService) ListForEmployee(ctx context.Context, employeeID string) ([]*domain.AttendanceEntry, error) {
	metrics.PortalReadsTotal.WithLabelValues("attendance").Inc()
	return s.attendance.ListByEmployee(ctx, employeeID)
}
