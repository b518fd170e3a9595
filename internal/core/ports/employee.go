package ports

import (
	"context"

	"github.com/peopleops/hr-system/internal/core/domain"
)

// EmployeeRepository persists employee records.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

// CreateEmployeeInput carries everything needed to onboard an employee:
// the HR record plus the credentials for the linked portal account.
type CreateEmployeeInput struct {
	Name        string
	Email       string
	JobTitle    string
	Department  string
	Status      string
	Username    string
	Password    string
	Permissions domain.Permissions
}

// UpdateEmployeeInput patches an existing record. Credentials are never
// updated through this path.
type UpdateEmployeeInput struct {
	ID          string
	Name        string
	Email       string
	JobTitle    string
	Department  string
	Status      string
	Permissions domain.Permissions
}

// EmployeeService defines admin-facing employee operations.
type EmployeeService interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
