package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopleops/hr-system/internal/api/metrics"
	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/ports"
)

// EmployeeService implements admin-facing employee management. Creating an
// employee also provisions the linked portal account; deleting removes both.
type EmployeeService struct {
	employees ports.EmployeeRepository
	users     ports.UserRepository
	logger    zerolog.Logger
}

func NewEmployeeService(employees ports.EmployeeRepository, users ports.UserRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, users: users, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if len(input.Password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	status := input.Status
	if status == "" {
		status = domain.EmployeeStatusActive
	}

	employee := &domain.Employee{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		JobTitle:    input.JobTitle,
		Department:  input.Department,
		Status:      status,
		Permissions: input.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	_, err = s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleEmployee,
		EmployeeID:   employee.ID,
		Permissions:  input.Permissions,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Roll the record back so a rejected username leaves no orphan.
		if delErr := s.employees.Delete(ctx, employee.ID); delErr != nil {
			s.logger.Error().Err(delErr).Str("employee_id", employee.ID).Msg("failed to roll back employee record")
		}
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("employee", "create").Inc()
	s.logger.Info().Str("employee_id", employee.ID).Str("username", input.Username).Msg("employee created")
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	employee, err := s.employees.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	employee.Name = input.Name
	employee.Email = input.Email
	employee.JobTitle = input.JobTitle
	employee.Department = input.Department
	employee.Status = input.Status
	employee.Permissions = input.Permissions
	employee.UpdatedAt = time.Now().UTC()

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}

	// Keep the portal account's permission record in step with the HR record;
	// it is what ends up inside freshly minted tokens.
	if err := s.users.SyncEmployeeAccount(ctx, employee.ID, input.Permissions); err != nil {
		s.logger.Warn().Err(err).Str("employee_id", employee.ID).Msg("failed to sync portal account permissions")
	}

	metrics.RecordMutationsTotal.WithLabelValues("employee", "update").Inc()
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.users.DeleteByEmployeeID(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("employee_id", id).Msg("failed to delete linked portal account")
	}
	metrics.RecordMutationsTotal.WithLabelValues("employee", "delete").Inc()
	return nil
}
