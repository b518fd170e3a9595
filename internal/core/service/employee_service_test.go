package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/ports"
)

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, cloneEmployee(e))
	}
	return out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	if e, ok := r.employees[id]; ok {
		return cloneEmployee(e), nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	r.employees[e.ID] = cloneEmployee(e)
	return nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	r.employees[e.ID] = cloneEmployee(e)
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func createInput() ports.CreateEmployeeInput {
	return ports.CreateEmployeeInput{
		Name:        "Jane Doe",
		Email:       "jane@corp.test",
		JobTitle:    "Engineer",
		Department:  "Platform",
		Username:    "jdoe",
		Password:    "secret1",
		Permissions: domain.Permissions{ProfileView: true},
	}
}

func TestEmployeeService_Create_ProvisionsPortalAccount(t *testing.T) {
	employees := newStubEmployeeRepo()
	users := newStubUserRepo()
	svc := NewEmployeeService(employees, users, zerolog.Nop())

	employee, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if employee.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if employee.Status != domain.EmployeeStatusActive {
		t.Fatalf("default status = %q, want Active", employee.Status)
	}

	account, err := users.FindByUsername(context.Background(), "jdoe")
	if err != nil {
		t.Fatalf("portal account not provisioned: %v", err)
	}
	if account.Role != domain.RoleEmployee {
		t.Fatalf("account role = %q, want employee", account.Role)
	}
	if account.EmployeeID != employee.ID {
		t.Fatalf("account not linked to employee record")
	}
	if account.Permissions != employee.Permissions {
		t.Fatalf("account permissions = %+v, want %+v", account.Permissions, employee.Permissions)
	}
	if account.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
}

func TestEmployeeService_Create_ShortPassword(t *testing.T) {
	employees := newStubEmployeeRepo()
	svc := NewEmployeeService(employees, newStubUserRepo(), zerolog.Nop())

	input := createInput()
	input.Password = "12345"
	if _, err := svc.Create(context.Background(), input); err != domain.ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if len(employees.employees) != 0 {
		t.Fatalf("no record should have been persisted")
	}
}

func TestEmployeeService_Create_RollsBackOnDuplicateUsername(t *testing.T) {
	employees := newStubEmployeeRepo()
	users := newStubUserRepo()
	seedUser(t, users, "jdoe", "passw0rd", domain.RoleEmployee)
	svc := NewEmployeeService(employees, users, zerolog.Nop())

	if _, err := svc.Create(context.Background(), createInput()); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(employees.employees) != 0 {
		t.Fatalf("employee record should have been rolled back")
	}
}

func TestEmployeeService_Update_SyncsAccountPermissions(t *testing.T) {
	employees := newStubEmployeeRepo()
	users := newStubUserRepo()
	svc := NewEmployeeService(employees, users, zerolog.Nop())

	employee, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), ports.UpdateEmployeeInput{
		ID:          employee.ID,
		Name:        employee.Name,
		Email:       employee.Email,
		JobTitle:    employee.JobTitle,
		Department:  "Infrastructure",
		Status:      domain.EmployeeStatusActive,
		Permissions: domain.Permissions{ProfileView: true, AttendanceView: true},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Department != "Infrastructure" {
		t.Fatalf("department = %q", updated.Department)
	}

	account, err := users.FindByUsername(context.Background(), "jdoe")
	if err != nil {
		t.Fatalf("account lookup: %v", err)
	}
	if !account.Permissions.AttendanceView {
		t.Fatalf("account permissions not synced: %+v", account.Permissions)
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo(), newStubUserRepo(), zerolog.Nop())
	_, err := svc.Update(context.Background(), ports.UpdateEmployeeInput{ID: "missing"})
	if err != domain.ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_Delete_RemovesPortalAccount(t *testing.T) {
	employees := newStubEmployeeRepo()
	users := newStubUserRepo()
	svc := NewEmployeeService(employees, users, zerolog.Nop())

	employee, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), employee.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(employees.employees) != 0 {
		t.Fatalf("employee record not removed")
	}
	if _, err := users.FindByUsername(context.Background(), "jdoe"); err != domain.ErrUserNotFound {
		t.Fatalf("portal account should be gone, got %v", err)
	}
}
