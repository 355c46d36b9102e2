package ports

import (
	"context"

	"github.com/webstore/store-api/internal/core/domain"
)

// UserRepository persists users and the roles granted to them.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) (*domain.User, error)
	// Delete returns the number of removed rows, or ErrUserNotFound when none.
	Delete(ctx context.Context, username string) (int64, error)

	ListRoles(ctx context.Context, username string) ([]string, error)
	// AddRole is idempotent: granting an existing role is not an error.
	AddRole(ctx context.Context, username, role string) error
	RemoveRole(ctx context.Context, username, role string) (int64, error)
}

// UnitOfWork runs fn against a user repository bound to one transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, users UserRepository) error) error
}
