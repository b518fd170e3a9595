package ports

import (
	"context"

	"github.com/peopleops/hr-system/internal/core/domain"
)

// UserRepository persists authentication accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdatePassword replaces the stored hash for the given account.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// SyncEmployeeAccount propagates permission changes made on the employee
	// record to the linked portal account. Missing accounts are not an error.
	SyncEmployeeAccount(ctx context.Context, employeeID string, perms domain.Permissions) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
	// Count reports how many accounts exist; used by the first-run admin
	// bootstrap.
	Count(ctx context.Context) (int64, error)
}
